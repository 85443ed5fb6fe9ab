package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nairacalc/nta-engine/metrics"
	"github.com/nairacalc/nta-engine/tax"
)

type AdminTaxRequest struct {
	Amount float64 `json:"amount" validate:"required,number,gte=0"`
}

// RulesStore is the slice of the ruleset holder the admin handlers use.
type RulesStore interface {
	SetRentReliefCap(amount float64) tax.Rules
	SetShareGainExemptionCap(amount float64) tax.Rules
}

type AdminHandler struct {
	vl      *validator.Validate
	rules   RulesStore
	metrics *metrics.EngineMetrics
}

func NewAdminHandler(vl *validator.Validate, rules RulesStore, m *metrics.EngineMetrics) *AdminHandler {
	return &AdminHandler{vl, rules, m}
}

func (a *AdminHandler) UpdateRentReliefCap(c echo.Context) error {
	var req AdminTaxRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if err := a.vl.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if req.Amount < 100_000 || req.Amount > 1_000_000 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid amount",
		})
	}

	updated := a.rules.SetRentReliefCap(req.Amount)

	a.metrics.IncRulesUpdate()

	return c.JSON(http.StatusOK, map[string]float64{
		"rentReliefCap": updated.RentReliefCap,
	})
}

func (a *AdminHandler) UpdateShareGainCap(c echo.Context) error {
	var req AdminTaxRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if err := a.vl.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if req.Amount < 1_000_000 || req.Amount > 50_000_000 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid amount",
		})
	}

	updated := a.rules.SetShareGainExemptionCap(req.Amount)

	a.metrics.IncRulesUpdate()

	return c.JSON(http.StatusOK, map[string]float64{
		"shareGainExemptionCap": updated.ShareGainExemptionCap,
	})
}
