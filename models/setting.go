package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Setting is one named numeric configuration value effective from a date.
// Multiple rows per name form the value's history; the applicable value for
// a query date is the one with the latest effective date at or before it.
type Setting struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	Name  string    `bun:"name,pk" json:"name"`
	Date  time.Time `bun:"date,pk,type:date" json:"date"`
	Value float64   `bun:"value,notnull" json:"value"`
}
