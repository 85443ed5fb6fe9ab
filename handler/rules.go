package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetRules exposes the active ruleset so clients can render band tables and
// caps without hardcoding them.
func (t *TaxHandler) GetRules(c echo.Context) error {
	return c.JSON(http.StatusOK, t.rules.Get())
}
