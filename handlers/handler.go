package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkallio/discrating/rating"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	svc *rating.Service
}

// New creates a Handler over the given rating service.
func New(svc *rating.Service) *Handler {
	return &Handler{svc: svc}
}

// httpError maps rating error kinds to HTTP status codes. Anything
// unrecognized is a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, rating.ErrRoundNotFound),
		errors.Is(err, rating.ErrPlayerNotFound),
		errors.Is(err, rating.ErrSourceRoundNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, rating.ErrRoundAlreadyExists),
		errors.Is(err, rating.ErrRoundAlreadyProcessed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, rating.ErrInvalidParams):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
