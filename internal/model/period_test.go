package model

import (
	"testing"
	"time"
)

func TestMonthPeriod_FeedMonth(t *testing.T) {
	p := MonthPeriod{Month: 1, Year: 2025}
	if got := p.FeedMonth(); got != 0 {
		t.Errorf("FeedMonth() = %d, want 0", got)
	}
	p = MonthPeriod{Month: 12, Year: 2025}
	if got := p.FeedMonth(); got != 11 {
		t.Errorf("FeedMonth() = %d, want 11", got)
	}
}

func TestMonthPeriod_Days(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{1, 2025, 31},
		{2, 2025, 28},
		{2, 2024, 29},
		{4, 2025, 30},
		{12, 2025, 31},
	}
	for _, tt := range tests {
		p := MonthPeriod{Month: tt.month, Year: tt.year}
		if got := p.Days(); got != tt.want {
			t.Errorf("%s Days() = %d, want %d", p, got, tt.want)
		}
	}
}

func TestMonthPeriod_IsCurrent(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	if !(MonthPeriod{Month: 6, Year: 2025}).IsCurrent(now) {
		t.Error("expected June 2025 to be current")
	}
	if (MonthPeriod{Month: 5, Year: 2025}).IsCurrent(now) {
		t.Error("May 2025 should not be current")
	}
	if (MonthPeriod{Month: 6, Year: 2024}).IsCurrent(now) {
		t.Error("June 2024 should not be current")
	}
}

func TestMonthPeriod_String(t *testing.T) {
	p := MonthPeriod{Month: 6, Year: 2025}
	if got := p.String(); got != "2025-06" {
		t.Errorf("String() = %q, want %q", got, "2025-06")
	}
}
