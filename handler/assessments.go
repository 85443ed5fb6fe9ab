package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/nairacalc/nta-engine/database"
)

type AssessmentsResponse struct {
	Assessments []database.Assessment `json:"assessments"`
}

func (t *TaxHandler) ListAssessments(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Missing userId",
		})
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}
	limit = lo.Clamp(limit, 1, 100)

	assessments, err := t.db.FindAssessmentsByUser(c.Request().Context(), userID, limit)
	if err != nil {
		zap.L().Error("failed to list assessments", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ResponseMsg{
			Message: "Internal server error",
		})
	}

	if assessments == nil {
		assessments = []database.Assessment{}
	}

	return c.JSON(http.StatusOK, &AssessmentsResponse{
		Assessments: assessments,
	})
}
