package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nairacalc/nta-engine/metrics"
	"github.com/nairacalc/nta-engine/tax"
)

type RecommendationRequest struct {
	UserID string `json:"userId"`
	tax.PersonalTaxInput

	// LatestResult is the caller's most recent assessment, when they have
	// one. Without it the advisory rules fall back to gross income.
	LatestResult *tax.PersonalTaxResult `json:"latestResult"`
}

type RecommendationResponse struct {
	Recommendations []tax.TaxRecommendation `json:"recommendations"`
}

func (t *TaxHandler) Recommend(c echo.Context) error {
	var req RecommendationRequest

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
	recommendations := t.rules.Get().GenerateRecommendations(req.PersonalTaxInput, req.LatestResult)

	t.metrics.ObserveCalculationDuration(metrics.KindRecommendations, time.Since(start))
	t.metrics.IncCalculation(metrics.KindRecommendations)

	if recommendations == nil {
		recommendations = []tax.TaxRecommendation{}
	}

	return c.JSON(http.StatusOK, &RecommendationResponse{
		Recommendations: recommendations,
	})
}
