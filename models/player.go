package models

import "github.com/uptrace/bun"

// Player is one competitor, keyed by their Metrix user id. Rows are created
// the first time a player shows up in any round's results and never deleted.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID            int64   `bun:"id,pk" json:"id"`
	MetrixName    string  `bun:"metrix_name,notnull" json:"metrixName"`
	FirstName     *string `bun:"first_name" json:"firstName,omitempty"`
	LastName      *string `bun:"last_name" json:"lastName,omitempty"`
	InitialRating *int    `bun:"initial_rating" json:"initialRating,omitempty"`
}
