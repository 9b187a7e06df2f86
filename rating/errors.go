package rating

import "errors"

// Error kinds surfaced by the engine. Every failure aborts the enclosing
// transaction; none are retried here. ErrRoundAlreadyProcessed is
// recoverable by re-running with force.
var (
	ErrUnknown               = errors.New("rating: internal consistency fault")
	ErrInvalidParams         = errors.New("rating: invalid params")
	ErrSettingNotFound       = errors.New("rating: setting not found")
	ErrRoundAlreadyExists    = errors.New("rating: round already exists")
	ErrRoundAlreadyProcessed = errors.New("rating: round already processed")
	ErrRoundNotFound         = errors.New("rating: round not found")
	ErrPlayerNotFound        = errors.New("rating: player not found")
	ErrSourceRoundNotFound   = errors.New("rating: round not found at result source")
)
