package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func score(player int64, sc int, prior *int) *playerScore {
	return &playerScore{playerID: player, score: sc, playerRating: prior}
}

func TestFitRound(t *testing.T) {
	// 18 baskets with MinBirdieDiff 3.6 gives a floor of 0.2.
	scores := []*playerScore{
		score(1, 5, intp(1000)),
		score(2, 10, intp(950)),
		score(3, 15, intp(900)),
	}

	model := fitRound(scores, 0.2)

	require.NotNil(t, model)
	assert.Equal(t, 1050, model.parRating)
	assert.InDelta(t, 10.0, model.pointRating, 1e-9)

	require.NotNil(t, scores[0].roundRating)
	assert.Equal(t, 1000, *scores[0].roundRating)
	assert.Equal(t, 950, *scores[1].roundRating)
	assert.Equal(t, 900, *scores[2].roundRating)
}

func TestFitRoundTooFewRatedPlayers(t *testing.T) {
	scores := []*playerScore{
		score(1, 5, intp(1000)),
		score(2, 10, intp(950)),
		score(3, 15, nil),
		score(4, 20, nil),
	}

	model := fitRound(scores, 0.2)

	assert.Nil(t, model)
	for _, s := range scores {
		assert.Nil(t, s.roundRating)
	}
}

func TestFitRoundUnratedEntriesStayNil(t *testing.T) {
	scores := []*playerScore{
		score(1, 5, intp(1000)),
		score(2, 10, intp(950)),
		score(3, 15, intp(900)),
		score(4, 20, nil),
	}

	model := fitRound(scores, 0.2)

	require.NotNil(t, model)
	assert.NotNil(t, scores[0].roundRating)
	assert.NotNil(t, scores[2].roundRating)
	assert.Nil(t, scores[3].roundRating)
}

func TestFitRoundNoScoreVariance(t *testing.T) {
	scores := []*playerScore{
		score(1, 10, intp(1000)),
		score(2, 10, intp(950)),
		score(3, 10, intp(900)),
	}

	model := fitRound(scores, 0.2)

	require.NotNil(t, model)
	// d = 0 gives a = 0, clamped to the floor; b re-solved to keep the
	// mean prior rating: (2850 + 0.2*30) / 3 = 952.
	assert.InDelta(t, 0.2, model.pointRating, 1e-9)
	assert.Equal(t, 952, model.parRating)
	for _, s := range scores {
		require.NotNil(t, s.roundRating)
		assert.Equal(t, 950, *s.roundRating)
	}
}

func TestFitRoundSlopeFloor(t *testing.T) {
	// Inverted field: better scores from lower-rated players would fit a
	// negative slope (-10); the floor takes over.
	scores := []*playerScore{
		score(1, 5, intp(900)),
		score(2, 10, intp(950)),
		score(3, 15, intp(1000)),
	}

	model := fitRound(scores, 0.2)

	require.NotNil(t, model)
	assert.InDelta(t, 0.2, model.pointRating, 1e-9)
	assert.Equal(t, 952, model.parRating)
	assert.Equal(t, 951, *scores[0].roundRating)
	assert.Equal(t, 950, *scores[1].roundRating)
	assert.Equal(t, 949, *scores[2].roundRating)
}

func TestFitRoundRatingsNeverNegative(t *testing.T) {
	scores := []*playerScore{
		score(1, 5, intp(10)),
		score(2, 10, intp(10)),
		score(3, 15, intp(10)),
	}

	// Floor of 10 points per stroke against tiny priors pushes the worst
	// score far below zero.
	model := fitRound(scores, 10)

	require.NotNil(t, model)
	assert.Equal(t, 60, *scores[0].roundRating)
	assert.Equal(t, 10, *scores[1].roundRating)
	assert.Equal(t, 0, *scores[2].roundRating)
}

func TestFitRoundZeroPriorIsKnown(t *testing.T) {
	scores := []*playerScore{
		score(1, 5, intp(0)),
		score(2, 10, intp(0)),
		score(3, 15, intp(0)),
	}

	model := fitRound(scores, 0.2)

	require.NotNil(t, model)
	for _, s := range scores {
		require.NotNil(t, s.roundRating)
	}
}
