package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Rating is a materialized rolling-rating snapshot: one player's rating as
// of one calendar date. All rows for a date are regenerated together.
type Rating struct {
	bun.BaseModel `bun:"table:ratings,alias:rt"`

	PlayerID int64     `bun:"player_id,pk" json:"playerID"`
	Date     time.Time `bun:"date,pk,type:date" json:"date"`
	Rating   int       `bun:"rating,notnull" json:"rating"`
}
