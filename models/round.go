package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Round is one event instance. A row starts out as a bare placeholder (id
// only) and gets its descriptive fields and computed ratings once processed.
// ParRating and PointRating stay null until a successful calculation with
// enough rated players.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:rd"`

	ID          int64      `bun:"id,pk" json:"id"`
	Name        *string    `bun:"name" json:"name,omitempty"`
	Datetime    *time.Time `bun:"datetime,type:timestamptz" json:"datetime,omitempty"`
	Baskets     *int       `bun:"baskets" json:"baskets,omitempty"`
	CourseID    *int64     `bun:"course_id" json:"courseID,omitempty"`
	CourseName  *string    `bun:"course_name" json:"courseName,omitempty"`
	ParRating   *int       `bun:"par_rating" json:"parRating,omitempty"`
	PointRating *float64   `bun:"point_rating" json:"pointRating,omitempty"`
	Processed   bool       `bun:"processed,notnull,default:false" json:"processed"`
}
