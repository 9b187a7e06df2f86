package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type ratingsResponse struct {
	Date    string      `json:"date"`
	Ratings interface{} `json:"ratings"`
	Dates   []string    `json:"dates"`
}

// Ratings returns the rating snapshot effective at the requested date (path
// param "date", YYYY-MM-DD) or the latest one, plus the list of all
// snapshot dates.
func (h *Handler) Ratings(c echo.Context) error {
	date := time.Now().UTC()
	if dateStr := c.Param("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	ctx := c.Request().Context()
	list, err := h.svc.Ratings(ctx, date)
	if err != nil {
		return httpError(err)
	}
	dates, err := h.svc.RatingDates(ctx)
	if err != nil {
		return httpError(err)
	}

	resp := ratingsResponse{Dates: make([]string, len(dates))}
	for i, d := range dates {
		resp.Dates[i] = d.Format("2006-01-02")
	}
	if list != nil {
		resp.Date = list.Date.Format("2006-01-02")
		resp.Ratings = list.Ratings
	}

	return c.JSON(http.StatusOK, resp)
}
