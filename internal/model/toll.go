package model

import "time"

// TollTransaction is a single parsed row from the portal's transaction feed.
type TollTransaction struct {
	PostingDate     string
	TagOrVehicleReg string
	TransactionDate string
	TransactionTime string
	Timestamp       time.Time // best-effort combined date+time, zero when unparsable
	Facility        string
	EntryPlaza      string
	ExitPlaza       string
	Amount          float64 // non-negative
	AmountRaw       string  // original display string, e.g. "$.80"
	Eligible        bool
}
