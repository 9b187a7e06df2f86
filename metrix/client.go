// Package metrix fetches round results from the Disc Golf Metrix API and
// adapts them into the rating engine's round-input shape. Nothing outside
// this package knows the Metrix wire format.
package metrix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mkallio/discrating/rating"
)

// Client talks to the Disc Golf Metrix competition API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client for the given base URL, e.g.
// "https://discgolfmetrix.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type metrixResult struct {
	UserID    *int64  `json:"UserID"`
	Name      string  `json:"Name"`
	ClassName string  `json:"ClassName"`
	Diff      int     `json:"Diff"`
	DNF       *string `json:"DNF"`
}

type metrixTrack struct {
	Par json.RawMessage `json:"Par"`
}

type metrixCompetition struct {
	Name       string         `json:"Name"`
	Date       string         `json:"Date"`
	Time       string         `json:"Time"`
	CourseID   int64          `json:"CourseID"`
	CourseName string         `json:"CourseName"`
	Results    []metrixResult `json:"Results"`
	Tracks     []metrixTrack  `json:"Tracks"`
}

type metrixResponse struct {
	Competition *metrixCompetition `json:"Competition"`
}

// RoundResult fetches one competition and adapts it into the engine's round
// shape. The basket count is the competition's track count. A response
// without a competition object means the round does not exist at the source.
func (c *Client) RoundResult(ctx context.Context, roundID int64) (*rating.RoundResult, error) {
	url := fmt.Sprintf("%s/api.php?content=result&id=%d", c.baseURL, roundID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metrix: fetch round %d: %w", roundID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metrix: fetch round %d: unexpected status %d", roundID, resp.StatusCode)
	}

	var payload metrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("metrix: decode round %d: %w", roundID, err)
	}
	if payload.Competition == nil {
		return nil, rating.ErrSourceRoundNotFound
	}

	return adaptCompetition(payload.Competition)
}

func adaptCompetition(comp *metrixCompetition) (*rating.RoundResult, error) {
	datetime, err := parseDatetime(comp.Date, comp.Time)
	if err != nil {
		return nil, fmt.Errorf("metrix: competition %q: %w", comp.Name, err)
	}

	players := make([]rating.PlayerEntry, 0, len(comp.Results))
	for _, res := range comp.Results {
		players = append(players, rating.PlayerEntry{
			PlayerID: res.UserID,
			Name:     res.Name,
			Category: res.ClassName,
			Score:    res.Diff,
			DNF:      res.DNF != nil && *res.DNF != "0",
		})
	}

	return &rating.RoundResult{
		Name:       comp.Name,
		Datetime:   datetime,
		CourseID:   comp.CourseID,
		CourseName: comp.CourseName,
		Baskets:    len(comp.Tracks),
		Players:    players,
	}, nil
}

// parseDatetime joins the API's separate date and time fields. The time
// field sometimes omits seconds.
func parseDatetime(date, clock string) (time.Time, error) {
	joined := date + " " + clock
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, joined, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", joined)
}
