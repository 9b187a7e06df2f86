package models

import "github.com/uptrace/bun"

// Result joins one player to one round. Score is the raw result (strokes
// relative to par, lower is better). PlayerRating is the player's rating
// going into the round, RoundRating the rating implied by this performance;
// both are null until the round's model has been fitted.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`

	RoundID      int64 `bun:"round_id,pk" json:"roundID"`
	PlayerID     int64 `bun:"player_id,pk" json:"playerID"`
	Score        int   `bun:"score,notnull" json:"score"`
	PlayerRating *int  `bun:"player_rating" json:"playerRating,omitempty"`
	RoundRating  *int  `bun:"round_rating" json:"roundRating,omitempty"`
}
