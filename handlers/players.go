package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Player returns one player with their current rating and round history.
func (h *Handler) Player(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid player id")
	}

	player, err := h.svc.Player(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, player)
}
