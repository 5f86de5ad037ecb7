package model

import (
	"fmt"
	"time"
)

// MonthPeriod identifies a billing month.
type MonthPeriod struct {
	Month int // 1-12
	Year  int
}

// FeedMonth returns the zero-based month index the portal feed endpoint expects.
func (p MonthPeriod) FeedMonth() int { return p.Month - 1 }

// Days returns the number of calendar days in the period.
func (p MonthPeriod) Days() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsCurrent reports whether the period is the current calendar month.
func (p MonthPeriod) IsCurrent(now time.Time) bool {
	return p.Year == now.Year() && time.Month(p.Month) == now.Month()
}

func (p MonthPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
