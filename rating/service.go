// Package rating maintains competitive player ratings derived from round
// results. Each round's results are fitted to a linear model translating raw
// scores into rating points; per-player rolling ratings are materialized per
// calendar date from a basket-weighted trailing window. Because every
// round's fit reads the ratings established by earlier rounds, any change to
// a round triggers a strictly forward, chronologically ordered recalculation
// of all later rounds, executed as one transaction.
package rating

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/mkallio/discrating/models"
)

// Service is the rating engine. It owns no state beyond the database handle;
// all reads and writes go through bun, and mutating operations run inside a
// single transaction including their full recalculation cascade.
type Service struct {
	db *bun.DB
}

// New creates a Service on the given database.
func New(db *bun.DB) *Service {
	return &Service{db: db}
}

// Setting returns the value of a named setting effective at the given date:
// the row with the latest effective date at or before it.
func (s *Service) Setting(ctx context.Context, name string, asOf time.Time) (float64, error) {
	return setting(ctx, s.db, name, asOf)
}

func setting(ctx context.Context, idb bun.IDB, name string, asOf time.Time) (float64, error) {
	st := new(models.Setting)
	err := idb.NewSelect().
		Model(st).
		Where("name = ?", name).
		Where("date <= ?", asOf).
		OrderExpr("date DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSettingNotFound
	}
	if err != nil {
		return 0, err
	}
	return st.Value, nil
}

// AddRound registers an empty round placeholder. The round carries no data
// until it is processed. Duplicate detection rides on the primary key so
// two concurrent calls cannot both succeed.
func (s *Service) AddRound(ctx context.Context, roundID int64) error {
	res, err := s.db.NewInsert().
		Model(&models.Round{ID: roundID}).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoundAlreadyExists
	}
	return nil
}

// ProcessRound ingests one round's imported results, computes its rating
// model and the day's rating snapshot, and recalculates every later round.
// Reprocessing an already processed round requires force. The whole
// operation, cascade included, commits or rolls back as one unit.
func (s *Service) ProcessRound(ctx context.Context, roundID int64, res *RoundResult, force bool) error {
	if res == nil {
		return ErrInvalidParams
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		round := new(models.Round)
		err := tx.NewSelect().Model(round).Where("id = ?", roundID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoundNotFound
		}
		if err != nil {
			return err
		}
		if round.Processed && !force {
			return ErrRoundAlreadyProcessed
		}

		dt := res.Datetime
		round.Name = &res.Name
		round.Datetime = &dt
		round.Baskets = &res.Baskets
		round.CourseID = &res.CourseID
		round.CourseName = &res.CourseName
		round.ParRating = nil
		round.PointRating = nil
		round.Processed = true
		if _, err := tx.NewUpdate().
			Model(round).
			Column("name", "datetime", "baskets", "course_id", "course_name",
				"par_rating", "point_rating", "processed").
			WherePK().
			Exec(ctx); err != nil {
			return err
		}

		// Results are replaced, never patched.
		if _, err := tx.NewDelete().
			Model((*models.Result)(nil)).
			Where("round_id = ?", roundID).
			Exec(ctx); err != nil {
			return err
		}

		for _, entry := range res.Players {
			if entry.PlayerID == nil || entry.DNF || entry.Category == practiceCategory {
				continue
			}
			player := &models.Player{ID: *entry.PlayerID, MetrixName: entry.Name}
			if _, err := tx.NewInsert().
				Model(player).
				On("CONFLICT (id) DO UPDATE").
				Set("metrix_name = EXCLUDED.metrix_name").
				Exec(ctx); err != nil {
				return err
			}
			result := &models.Result{RoundID: roundID, PlayerID: *entry.PlayerID, Score: entry.Score}
			if _, err := tx.NewInsert().Model(result).Exec(ctx); err != nil {
				return err
			}
		}

		if err := s.calculateRound(ctx, tx, roundID); err != nil {
			return err
		}

		return s.cascade(ctx, tx, truncateDate(res.Datetime))
	})
}

// RemoveRound deletes a round. Removing a processed round requires force and
// also deletes its results, rebuilds its date's rating snapshot and
// recalculates every later round, all in one transaction. Removing an
// unprocessed placeholder touches nothing else.
func (s *Service) RemoveRound(ctx context.Context, roundID int64, force bool) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		round := new(models.Round)
		err := tx.NewSelect().Model(round).Where("id = ?", roundID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoundNotFound
		}
		if err != nil {
			return err
		}
		if round.Processed && !force {
			return ErrRoundAlreadyProcessed
		}

		if _, err := tx.NewDelete().
			Model((*models.Round)(nil)).
			Where("id = ?", roundID).
			Exec(ctx); err != nil {
			return err
		}

		if !round.Processed {
			return nil
		}
		if round.Datetime == nil {
			return ErrUnknown
		}
		date := truncateDate(*round.Datetime)

		if _, err := tx.NewDelete().
			Model((*models.Result)(nil)).
			Where("round_id = ?", roundID).
			Exec(ctx); err != nil {
			return err
		}

		// The removed round's own snapshot is stale too: its results are gone.
		if err := refreshRatings(ctx, tx, date); err != nil {
			return err
		}

		return s.cascade(ctx, tx, date)
	})
}

// cascade recalculates every round dated strictly after cutoff in ascending
// datetime order. Ascending order is mandatory: each round's prior-rating
// lookups read the snapshots written by the rounds before it, so running out
// of order would fit against stale or missing inputs.
func (s *Service) cascade(ctx context.Context, idb bun.IDB, cutoff time.Time) error {
	var ids []int64
	if err := idb.NewSelect().
		Model((*models.Round)(nil)).
		Column("id").
		Where("datetime > ?", cutoff).
		OrderExpr("datetime ASC").
		Scan(ctx, &ids); err != nil {
		return err
	}

	for _, id := range ids {
		if err := s.calculateRound(ctx, idb, id); err != nil {
			return err
		}
	}
	return nil
}

// calculateRound fits the round's rating model from its stored results and
// the players' prior ratings, persists the model and per-result ratings, and
// rebuilds the rating snapshot for the round's date.
func (s *Service) calculateRound(ctx context.Context, idb bun.IDB, roundID int64) error {
	round := new(models.Round)
	err := idb.NewSelect().Model(round).Where("id = ?", roundID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUnknown
	}
	if err != nil {
		return err
	}
	if round.Datetime == nil || round.Baskets == nil {
		return ErrUnknown
	}
	date := truncateDate(*round.Datetime)

	minBirdieDiff, err := setting(ctx, idb, SettingMinBirdieDiff, date)
	if err != nil {
		return err
	}
	minPointRating := minBirdieDiff / float64(*round.Baskets)

	var results []models.Result
	if err := idb.NewSelect().
		Model(&results).
		Where("round_id = ?", roundID).
		Scan(ctx); err != nil {
		return err
	}

	scores := make([]*playerScore, 0, len(results))
	for _, r := range results {
		prior, err := playerRating(ctx, idb, r.PlayerID, date)
		if err != nil {
			return err
		}
		scores = append(scores, &playerScore{playerID: r.PlayerID, score: r.Score, playerRating: prior})
	}

	model := fitRound(scores, minPointRating)
	round.ParRating = nil
	round.PointRating = nil
	if model != nil {
		round.ParRating = &model.parRating
		round.PointRating = &model.pointRating
	}
	if _, err := idb.NewUpdate().
		Model(round).
		Column("par_rating", "point_rating").
		WherePK().
		Exec(ctx); err != nil {
		return err
	}

	for _, sc := range scores {
		result := &models.Result{
			RoundID:      roundID,
			PlayerID:     sc.playerID,
			PlayerRating: sc.playerRating,
			RoundRating:  sc.roundRating,
		}
		if _, err := idb.NewUpdate().
			Model(result).
			Column("player_rating", "round_rating").
			WherePK().
			Exec(ctx); err != nil {
			return err
		}
	}

	return refreshRatings(ctx, idb, date)
}

// playerRating returns the player's rating going into date: the most recent
// snapshot strictly before it, falling back to the player's initial rating.
// nil means the player has no prior rating at all.
func playerRating(ctx context.Context, idb bun.IDB, playerID int64, date time.Time) (*int, error) {
	rt := new(models.Rating)
	err := idb.NewSelect().
		Model(rt).
		Where("player_id = ?", playerID).
		Where("date < ?", date).
		OrderExpr("date DESC").
		Limit(1).
		Scan(ctx)
	if err == nil {
		return &rt.Rating, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	player := new(models.Player)
	err = idb.NewSelect().Model(player).Where("id = ?", playerID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return player.InitialRating, nil
}

// truncateDate strips the time of day. All cross-round causality decisions
// work on calendar dates in UTC.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
