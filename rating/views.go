package rating

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mkallio/discrating/models"
)

// RatingEntry is one player's line in a rating list.
type RatingEntry struct {
	PlayerID   int64  `bun:"player_id" json:"playerID"`
	MetrixName string `bun:"metrix_name" json:"metrixName"`
	Rating     int    `bun:"rating" json:"rating"`
}

// RatingList is the rating snapshot for one date, best first.
type RatingList struct {
	Date    time.Time     `json:"date"`
	Ratings []RatingEntry `json:"ratings"`
}

// RoundSummary describes one processed round in a listing.
type RoundSummary struct {
	ID         int64      `json:"id"`
	Name       *string    `json:"name"`
	Datetime   *time.Time `json:"datetime"`
	CourseID   *int64     `json:"courseID"`
	CourseName *string    `json:"courseName"`
}

// RoundResultEntry is one player's result within a round detail.
type RoundResultEntry struct {
	PlayerID     int64  `bun:"player_id" json:"playerID"`
	MetrixName   string `bun:"metrix_name" json:"metrixName"`
	Score        int    `bun:"score" json:"score"`
	PlayerRating *int   `bun:"player_rating" json:"playerRating"`
	RoundRating  *int   `bun:"round_rating" json:"roundRating"`
}

// RoundDetail is a fully computed round with its results, best score first.
type RoundDetail struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Datetime    time.Time          `json:"datetime"`
	CourseID    int64              `json:"courseID"`
	CourseName  string             `json:"courseName"`
	ParRating   int                `json:"parRating"`
	PointRating float64            `json:"pointRating"`
	Results     []RoundResultEntry `json:"results"`
}

// PlayerRound is one round a player took part in, seen from their history.
type PlayerRound struct {
	RoundID     int64      `bun:"round_id" json:"roundID"`
	Name        *string    `bun:"name" json:"name"`
	Datetime    *time.Time `bun:"datetime" json:"datetime"`
	CourseID    *int64     `bun:"course_id" json:"courseID"`
	CourseName  *string    `bun:"course_name" json:"courseName"`
	Score       int        `bun:"score" json:"score"`
	RoundRating *int       `bun:"round_rating" json:"roundRating"`
}

// PlayerDetail is one player with their current rating and round history,
// newest round first. Rating is nil when the player has no published
// snapshot and no initial rating.
type PlayerDetail struct {
	ID         int64         `json:"id"`
	MetrixName string        `json:"metrixName"`
	Rating     *int          `json:"rating"`
	Rounds     []PlayerRound `json:"rounds"`
}

// Ratings returns the most recent rating snapshot dated at or before the
// given date, or nil when no snapshot exists yet.
func (s *Service) Ratings(ctx context.Context, date time.Time) (*RatingList, error) {
	var snapshotDate time.Time
	err := s.db.NewSelect().
		Model((*models.Rating)(nil)).
		Column("date").
		Where("date <= ?", date).
		OrderExpr("date DESC").
		Limit(1).
		Scan(ctx, &snapshotDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []RatingEntry
	if err := s.db.NewSelect().
		TableExpr("ratings AS rt").
		ColumnExpr("rt.player_id, p.metrix_name, rt.rating").
		Join("LEFT JOIN players AS p ON rt.player_id = p.id").
		Where("rt.date = ?", snapshotDate).
		OrderExpr("rt.rating DESC").
		Scan(ctx, &entries); err != nil {
		return nil, err
	}

	return &RatingList{Date: snapshotDate, Ratings: entries}, nil
}

// RatingDates returns every date with a published snapshot, newest first.
func (s *Service) RatingDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	if err := s.db.NewSelect().
		Model((*models.Rating)(nil)).
		ColumnExpr("DISTINCT date").
		OrderExpr("date DESC").
		Scan(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// Rounds returns all processed rounds, newest first.
func (s *Service) Rounds(ctx context.Context) ([]RoundSummary, error) {
	var rounds []models.Round
	if err := s.db.NewSelect().
		Model(&rounds).
		Where("processed").
		OrderExpr("datetime DESC").
		Scan(ctx); err != nil {
		return nil, err
	}

	out := make([]RoundSummary, len(rounds))
	for i, rd := range rounds {
		out[i] = RoundSummary{
			ID:         rd.ID,
			Name:       rd.Name,
			Datetime:   rd.Datetime,
			CourseID:   rd.CourseID,
			CourseName: rd.CourseName,
		}
	}
	return out, nil
}

// Round returns one processed, fully computed round. Rounds that exist but
// never produced a model (too few rated players) are reported as not found,
// same as unknown ids.
func (s *Service) Round(ctx context.Context, roundID int64) (*RoundDetail, error) {
	round := new(models.Round)
	err := s.db.NewSelect().
		Model(round).
		Where("id = ?", roundID).
		Where("processed").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	if round.Name == nil || round.Datetime == nil || round.CourseID == nil ||
		round.CourseName == nil || round.ParRating == nil || round.PointRating == nil {
		return nil, ErrRoundNotFound
	}

	var entries []RoundResultEntry
	if err := s.db.NewSelect().
		TableExpr("results AS r").
		ColumnExpr("r.player_id, p.metrix_name, r.score, r.player_rating, r.round_rating").
		Join("LEFT JOIN players AS p ON r.player_id = p.id").
		Where("r.round_id = ?", roundID).
		OrderExpr("r.score ASC").
		Scan(ctx, &entries); err != nil {
		return nil, err
	}

	return &RoundDetail{
		ID:          round.ID,
		Name:        *round.Name,
		Datetime:    *round.Datetime,
		CourseID:    *round.CourseID,
		CourseName:  *round.CourseName,
		ParRating:   *round.ParRating,
		PointRating: *round.PointRating,
		Results:     entries,
	}, nil
}

// Player returns one player with their current rating and round history.
func (s *Service) Player(ctx context.Context, playerID int64) (*PlayerDetail, error) {
	player := new(models.Player)
	err := s.db.NewSelect().Model(player).Where("id = ?", playerID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	current, err := playerRating(ctx, s.db, playerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var rounds []PlayerRound
	if err := s.db.NewSelect().
		TableExpr("results AS r").
		ColumnExpr("r.round_id, rd.name, rd.datetime, rd.course_id, rd.course_name, r.score, r.round_rating").
		Join("LEFT JOIN rounds AS rd ON r.round_id = rd.id").
		Where("r.player_id = ?", playerID).
		OrderExpr("rd.datetime DESC").
		Scan(ctx, &rounds); err != nil {
		return nil, err
	}

	return &PlayerDetail{
		ID:         player.ID,
		MetrixName: player.MetrixName,
		Rating:     current,
		Rounds:     rounds,
	}, nil
}

// PendingRoundIDs returns rounds awaiting processing in ascending datetime
// order; with force it returns every round, for a full rebuild.
func (s *Service) PendingRoundIDs(ctx context.Context, force bool) ([]int64, error) {
	var rounds []models.Round
	if err := s.db.NewSelect().
		Model(&rounds).
		OrderExpr("datetime ASC").
		Scan(ctx); err != nil {
		return nil, err
	}

	var ids []int64
	for _, rd := range rounds {
		if !rd.Processed || force {
			ids = append(ids, rd.ID)
		}
	}
	return ids, nil
}
