package rating

import "math"

// playerScore is one result entering a round's fit. playerRating is the
// player's rating going into the round (nil when unknown); roundRating is
// filled in by fitRound for entries that took part in the fit.
type playerScore struct {
	playerID     int64
	score        int
	playerRating *int
	roundRating  *int
}

// roundModel is the fitted linear model for one round: rating = b − a·score,
// with parRating = round(b) and pointRating = a.
type roundModel struct {
	parRating   int
	pointRating float64
}

// fitRound fits a least-squares line through (score, prior rating) pairs and
// derives each fitted player's round rating from it. Entries without a known
// prior rating are excluded from the fit and keep a nil round rating.
//
// Fewer than three rated entries means the round gets no model at all; that
// is a valid outcome for under-populated rounds, not an error. The slope is
// floored at minPointRating, re-solving the intercept so the mean prior
// rating is preserved; without the floor a tightly clustered field would
// produce a uselessly flat or even inverted rating curve.
func fitRound(scores []*playerScore, minPointRating float64) *roundModel {
	var n, x, x2, xy, y float64
	for _, s := range scores {
		if s.playerRating == nil {
			continue
		}
		sc := float64(s.score)
		pr := float64(*s.playerRating)
		n++
		x += sc
		x2 += sc * sc
		xy += sc * pr
		y += pr
	}

	if n < 3 {
		return nil
	}

	d := n*x2 - x*x
	a := 0.0
	b := y / n
	if d != 0 {
		a = (x*y - n*xy) / d
		b = (x2*y - x*xy) / d
	}
	if a < minPointRating {
		a = minPointRating
		b = (y + a*x) / n
	}

	for _, s := range scores {
		if s.playerRating == nil {
			continue
		}
		rr := int(math.Round(b - a*float64(s.score)))
		if rr < 0 {
			rr = 0
		}
		s.roundRating = &rr
	}

	return &roundModel{parRating: int(math.Round(b)), pointRating: a}
}
