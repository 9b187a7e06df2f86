package rating

import (
	"context"
	"math"
	"time"

	"github.com/uptrace/bun"

	"github.com/mkallio/discrating/models"
)

// windowRow is a flat scan target for the aggregation window query: one
// result joined with its round's basket count, ordered by player and then
// round datetime descending.
type windowRow struct {
	PlayerID    int64 `bun:"player_id"`
	RoundRating *int  `bun:"round_rating"`
	Baskets     *int  `bun:"baskets"`
}

// aggregateRatings walks window rows and computes each player's rolling
// rating, weighted by basket count so long rounds count proportionally more.
// A player's results are consumed newest first and a result only counts
// while the basket total before it is still under maxBaskets; players whose
// counted total stays under minBaskets get no rating at all. Rows missing a
// round rating or basket count are skipped.
func aggregateRatings(rows []windowRow, minBaskets, maxBaskets float64) map[int64]int {
	ratings := make(map[int64]int)

	var playerID int64
	var sum, baskets float64
	flush := func() {
		if baskets > 0 && baskets >= minBaskets {
			ratings[playerID] = int(math.Round(sum / baskets))
		}
	}

	for _, row := range rows {
		if row.RoundRating == nil || row.Baskets == nil {
			continue
		}
		if row.PlayerID != playerID {
			flush()
			playerID = row.PlayerID
			sum = 0
			baskets = 0
		}
		if baskets < maxBaskets {
			sum += float64(*row.RoundRating) * float64(*row.Baskets)
			baskets += float64(*row.Baskets)
		}
	}
	flush()

	return ratings
}

// refreshRatings rebuilds the rating snapshot for one calendar date from a
// trailing one-year window of results. The date's rows are always replaced
// wholesale; a partially updated snapshot would mix old and new inputs.
func refreshRatings(ctx context.Context, idb bun.IDB, date time.Time) error {
	if _, err := idb.NewDelete().
		Model((*models.Rating)(nil)).
		Where("date = ?", date).
		Exec(ctx); err != nil {
		return err
	}

	minBaskets, err := setting(ctx, idb, SettingMinBaskets, date)
	if err != nil {
		return err
	}
	maxBaskets, err := setting(ctx, idb, SettingMaxBaskets, date)
	if err != nil {
		return err
	}

	minDate := date.AddDate(-1, 0, 0)
	maxDate := date.AddDate(0, 0, 1)

	var rows []windowRow
	if err := idb.NewSelect().
		TableExpr("results AS r").
		ColumnExpr("r.player_id, r.round_rating, rd.baskets").
		Join("LEFT JOIN rounds AS rd ON r.round_id = rd.id").
		Where("rd.datetime > ?", minDate).
		Where("rd.datetime < ?", maxDate).
		OrderExpr("r.player_id ASC, rd.datetime DESC").
		Scan(ctx, &rows); err != nil {
		return err
	}

	for playerID, value := range aggregateRatings(rows, minBaskets, maxBaskets) {
		row := &models.Rating{PlayerID: playerID, Date: date, Rating: value}
		if _, err := idb.NewInsert().Model(row).Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
