package model

import "time"

// TallyResult aggregates the parsed transactions for a period.
type TallyResult struct {
	TotalCount        int
	EligibleCount     int
	EligibleAmountSum float64
}

// EstimationResult projects the eligible-toll count to month-end.
// Only meaningful for the current calendar month.
type EstimationResult struct {
	CurrentDay     int
	DaysInMonth    int
	DailyAverage   float64
	ProjectedTotal float64
}

// VerificationResult compares a stated discount amount against the expected one.
type VerificationResult struct {
	ExpectedDiscount float64
	StatedDiscount   float64
	Matched          bool
	Difference       float64 // stated - expected, signed
	Direction        string  // "charged more/less than expected", empty on match
}

// DiscountedToll is a transaction with its tier discount applied.
type DiscountedToll struct {
	Transaction TollTransaction
	TierPercent float64
	Discounted  float64
	Savings     float64
}

// Report is the full outcome of one pipeline run.
type Report struct {
	Period        MonthPeriod
	Tally         TallyResult
	ActualTier    Tier
	Estimate      *EstimationResult // nil for past periods
	ProjectedTier Tier              // only set when Estimate is present
	// EffectiveTier drives the per-transaction discount display: the
	// projected tier under estimation, the actual tier otherwise. It can
	// disagree with ActualTier mid-month near a tier boundary.
	EffectiveTier Tier
	Discounted    []DiscountedToll
	Verification  *VerificationResult // nil unless a stated amount was supplied
	GeneratedAt   time.Time
}
