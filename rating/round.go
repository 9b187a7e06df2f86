package rating

import "time"

// Names of the settings the engine reads. Values are time-versioned in the
// settings table; see Service.Setting.
const (
	// SettingMinBirdieDiff is the per-basket floor on a round's fitted
	// slope. Divided by the round's basket count before use.
	SettingMinBirdieDiff = "MinBirdieDiff"
	// SettingMinBaskets is the minimum windowed basket total a player
	// needs before a rating snapshot is published for them.
	SettingMinBaskets = "MinBaskets"
	// SettingMaxBaskets caps how many recent baskets count toward the
	// rolling average.
	SettingMaxBaskets = "MaxBaskets"
)

// practiceCategory marks non-competitive entries; they never become results.
const practiceCategory = "Тренировка"

// RoundResult is the engine's own shape for one imported round. Import
// clients adapt whatever their source returns into this; nothing
// source-specific crosses into the calculation.
type RoundResult struct {
	Name       string
	Datetime   time.Time
	CourseID   int64
	CourseName string
	Baskets    int
	Players    []PlayerEntry
}

// PlayerEntry is one player's line in an imported round. PlayerID is nil for
// entries the source could not tie to a registered player; those are skipped
// during processing, as are DNFs and practice-category entries.
type PlayerEntry struct {
	PlayerID *int64
	Name     string
	Category string
	Score    int
	DNF      bool
}
