package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Rounds lists all processed rounds, newest first.
func (h *Handler) Rounds(c echo.Context) error {
	rounds, err := h.svc.Rounds(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rounds)
}

// Round returns one computed round with its results.
func (h *Handler) Round(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	round, err := h.svc.Round(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, round)
}
