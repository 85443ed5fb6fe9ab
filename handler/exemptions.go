package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nairacalc/nta-engine/metrics"
	"github.com/nairacalc/nta-engine/tax"
)

type ShareTransferRequest struct {
	UserID string `json:"userId"`
	tax.ShareTransferInput
}

type CompensationRequest struct {
	UserID            string  `json:"userId"`
	TotalCompensation float64 `json:"totalCompensation" validate:"gte=0"`
}

func (t *TaxHandler) CalculateShareTransfer(c echo.Context) error {
	var req ShareTransferRequest

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
	result := t.rules.Get().CalculateShareTransferExemption(req.ShareTransferInput)

	t.metrics.ObserveCalculationDuration(metrics.KindShareTransfer, time.Since(start))
	t.metrics.IncCalculation(metrics.KindShareTransfer)

	t.saveAssessment(c.Request().Context(), req.UserID, metrics.KindShareTransfer, result)

	return c.JSON(http.StatusOK, &result)
}

func (t *TaxHandler) CalculateCompensation(c echo.Context) error {
	var req CompensationRequest

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
	result := t.rules.Get().CalculateCompensationExemption(req.TotalCompensation)

	t.metrics.ObserveCalculationDuration(metrics.KindCompensation, time.Since(start))
	t.metrics.IncCalculation(metrics.KindCompensation)

	t.saveAssessment(c.Request().Context(), req.UserID, metrics.KindCompensation, result)

	return c.JSON(http.StatusOK, &result)
}
