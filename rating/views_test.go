package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews(t *testing.T) {
	bdb := newTestDB(t)
	seedSettings(t, bdb, 3.6, 18, 72)
	seedPlayer(t, bdb, 1, "Anna", intp(1000))
	seedPlayer(t, bdb, 2, "Bert", intp(950))
	seedPlayer(t, bdb, 3, "Carl", intp(900))

	svc := New(bdb)
	ctx := context.Background()

	require.NoError(t, svc.AddRound(ctx, 100))
	require.NoError(t, svc.ProcessRound(ctx, 100, threePlayerRound(utc(2024, time.May, 1, 18), 5, 10, 15), false))

	t.Run("ratings", func(t *testing.T) {
		list, err := svc.Ratings(ctx, utc(2024, time.June, 1, 0))
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.Equal(t, utc(2024, time.May, 1, 0), list.Date.UTC())
		require.Len(t, list.Ratings, 3)
		// Best first.
		assert.Equal(t, int64(1), list.Ratings[0].PlayerID)
		assert.Equal(t, "Anna", list.Ratings[0].MetrixName)
		assert.Equal(t, 1000, list.Ratings[0].Rating)
		assert.Equal(t, 900, list.Ratings[2].Rating)
	})

	t.Run("ratings before any snapshot", func(t *testing.T) {
		list, err := svc.Ratings(ctx, utc(2024, time.April, 1, 0))
		require.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("rating dates", func(t *testing.T) {
		dates, err := svc.RatingDates(ctx)
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, utc(2024, time.May, 1, 0), dates[0].UTC())
	})

	t.Run("rounds", func(t *testing.T) {
		rounds, err := svc.Rounds(ctx)
		require.NoError(t, err)
		require.Len(t, rounds, 1)
		assert.Equal(t, int64(100), rounds[0].ID)
		require.NotNil(t, rounds[0].Name)
		assert.Equal(t, "Weekly", *rounds[0].Name)
	})

	t.Run("round detail", func(t *testing.T) {
		round, err := svc.Round(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, 1050, round.ParRating)
		assert.InDelta(t, 10.0, round.PointRating, 1e-9)
		assert.Equal(t, "Central Park", round.CourseName)
		require.Len(t, round.Results, 3)
		// Best score first.
		assert.Equal(t, int64(1), round.Results[0].PlayerID)
		assert.Equal(t, 5, round.Results[0].Score)
		require.NotNil(t, round.Results[0].RoundRating)
		assert.Equal(t, 1000, *round.Results[0].RoundRating)

		_, err = svc.Round(ctx, 999)
		assert.ErrorIs(t, err, ErrRoundNotFound)
	})

	t.Run("player detail", func(t *testing.T) {
		player, err := svc.Player(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Anna", player.MetrixName)
		require.NotNil(t, player.Rating)
		assert.Equal(t, 1000, *player.Rating)
		require.Len(t, player.Rounds, 1)
		assert.Equal(t, int64(100), player.Rounds[0].RoundID)
		assert.Equal(t, 5, player.Rounds[0].Score)

		_, err = svc.Player(ctx, 999)
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("pending rounds", func(t *testing.T) {
		ids, err := svc.PendingRoundIDs(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, ids)

		require.NoError(t, svc.AddRound(ctx, 300))

		ids, err = svc.PendingRoundIDs(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, []int64{300}, ids)

		ids, err = svc.PendingRoundIDs(ctx, true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{100, 300}, ids)
	})
}
