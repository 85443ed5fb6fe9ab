package handler

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nairacalc/nta-engine/database"
	"github.com/nairacalc/nta-engine/metrics"
	"github.com/nairacalc/nta-engine/tax"
)

// RulesProvider serves the active ruleset. Handlers read it once per request
// so a reload cannot change the rules mid-calculation.
type RulesProvider interface {
	Get() tax.Rules
}

type IDB interface {
	SaveAssessment(ctx context.Context, userID, kind string, result any) (database.Assessment, error)
	FindAssessmentsByUser(ctx context.Context, userID string, limit int) ([]database.Assessment, error)
}

type TaxHandler struct {
	vl      *validator.Validate
	rules   RulesProvider
	db      IDB
	metrics *metrics.EngineMetrics
}

func NewTaxHandler(vl *validator.Validate, rules RulesProvider, db IDB, m *metrics.EngineMetrics) *TaxHandler {
	return &TaxHandler{vl, rules, db, m}
}

type PersonalTaxRequest struct {
	UserID string `json:"userId"`
	tax.PersonalTaxInput
}

type PersonalCSVRow struct {
	AnnualIncome  float64 `json:"annualIncome"`
	TaxableIncome float64 `json:"taxableIncome"`
	TotalTax      float64 `json:"totalTax"`
	NetIncome     float64 `json:"netIncome"`
}

type PersonalCSVResponse struct {
	Results []PersonalCSVRow `json:"results"`
}

func (t *TaxHandler) CalculatePersonal(c echo.Context) error {
	var req PersonalTaxRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if err := t.vl.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	start := time.Now()
	result := t.rules.Get().CalculatePersonalTax(req.PersonalTaxInput)

	t.metrics.ObserveCalculationDuration(metrics.KindPersonal, time.Since(start))
	t.metrics.IncCalculation(metrics.KindPersonal)

	t.saveAssessment(c.Request().Context(), req.UserID, metrics.KindPersonal, result)

	return c.JSON(http.StatusOK, &result)
}

func (t *TaxHandler) CalculatePersonalWithCSV(c echo.Context) error {
	if c.Request().Header.Get("Content-Type") != "text/csv" {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Unacceptable content, require CSV content",
		})
	}

	rows, err := csv.NewReader(c.Request().Body).ReadAll()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request, might not be csv format",
		})
	}

	if len(rows) == 0 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Wrong csv content, no content",
		})
	}

	if len(rows) == 1 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Wrong csv content, should have more than 1 row due to it is header",
		})
	}

	var inputs []tax.PersonalTaxInput

	// validation
	for i, row := range rows {
		if len(row) != 4 {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Wrong csv column length",
			})
		}

		if i == 0 {
			badcsvformat := row[0] != "annualIncome" ||
				row[1] != "applyPension" ||
				row[2] != "applyNHF" ||
				row[3] != "annualRent"

			if badcsvformat {
				return c.JSON(http.StatusBadRequest, ResponseMsg{
					Message: "Wrong csv header",
				})
			}

			continue
		}

		income, err := strconv.ParseFloat(row[0], 64)
		if err != nil || income < 0 {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid annualIncome amount",
			})
		}

		applyPension, err := strconv.ParseBool(row[1])
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid applyPension flag",
			})
		}

		applyNHF, err := strconv.ParseBool(row[2])
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid applyNHF flag",
			})
		}

		rent, err := strconv.ParseFloat(row[3], 64)
		if err != nil || rent < 0 {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid annualRent amount",
			})
		}

		inputs = append(inputs, tax.PersonalTaxInput{
			AnnualIncome: income,
			ApplyPension: applyPension,
			ApplyNHF:     applyNHF,
			AnnualRent:   rent,
		})
	}

	rules := t.rules.Get()

	results := make([]PersonalCSVRow, 0, len(inputs))

	for _, in := range inputs {
		result := rules.CalculatePersonalTax(in)

		t.metrics.IncCalculation(metrics.KindPersonal)

		results = append(results, PersonalCSVRow{
			AnnualIncome:  result.GrossIncome,
			TaxableIncome: result.TaxableIncome,
			TotalTax:      result.TotalTax,
			NetIncome:     result.NetIncome,
		})
	}

	return c.JSON(http.StatusOK, &PersonalCSVResponse{
		Results: results,
	})
}

// saveAssessment persists a result for history when the caller identified
// themselves. The calculation response never depends on it; a failed save is
// logged and dropped.
func (t *TaxHandler) saveAssessment(ctx context.Context, userID, kind string, result any) {
	if userID == "" {
		return
	}

	if _, err := t.db.SaveAssessment(ctx, userID, kind, result); err != nil {
		zap.L().Warn("failed to save assessment",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return
	}

	t.metrics.IncAssessmentSaved(kind)
}
