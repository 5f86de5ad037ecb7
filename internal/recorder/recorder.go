package recorder

import (
	"TollSentinel/internal/model"
)

// RunRecord holds the outcome of one pipeline run for the history table.
type RunRecord struct {
	Period            string
	TotalCount        int
	EligibleCount     int
	EligibleAmountSum float64
	ActualTier        model.Tier
	ProjectedTotal    float64
	ProjectedTier     model.Tier
	ExitStatus        int
	ErrorMessage      string // empty on success
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
