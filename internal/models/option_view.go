package models

import "time"

// Option view outcome constants
const (
	OutcomeKnown   = "known"
	OutcomeUnknown = "unknown"
)

// OptionView is a per-profile count of send modal opens by option and outcome.
type OptionView struct {
	Handle     string
	Option     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
