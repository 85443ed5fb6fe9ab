package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nairacalc/nta-engine/metrics"
	"github.com/nairacalc/nta-engine/tax"
)

type CompanyTaxRequest struct {
	UserID string `json:"userId"`
	tax.CompanyTaxInput
}

func (t *TaxHandler) CalculateCompany(c echo.Context) error {
	var req CompanyTaxRequest

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
	result := t.rules.Get().CalculateCompanyTax(req.CompanyTaxInput)

	t.metrics.ObserveCalculationDuration(metrics.KindCompany, time.Since(start))
	t.metrics.IncCalculation(metrics.KindCompany)

	t.saveAssessment(c.Request().Context(), req.UserID, metrics.KindCompany, result)

	return c.JSON(http.StatusOK, &result)
}
