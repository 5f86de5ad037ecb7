// Package parser converts the portal's raw CSV feed into transaction records.
package parser

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"TollSentinel/internal/model"
)

// Feed column positions.
const (
	colPostingDate = iota
	colTag
	colTransactionDate
	colTransactionTime
	colFacility
	colEntryPlaza
	colExitPlaza
	colToll
	colEligible
)

// eligibleToken is the exact, case-sensitive value marking a toll as
// discount-eligible. Anything else, including blank, is not eligible.
const eligibleToken = "Yes"

var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// Parse converts the raw feed into transactions in source order. It is a
// pure function: the same input always yields the same sequence. Footer and
// blank rows (empty transaction date or toll cell) are skipped, not emitted.
func Parse(raw string) ([]model.TollTransaction, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read feed csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("feed has no header row")
	}

	txs := make([]model.TollTransaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) <= colToll {
			continue
		}
		txDate := strings.TrimSpace(rec[colTransactionDate])
		tollRaw := strings.TrimSpace(rec[colToll])
		if txDate == "" || tollRaw == "" {
			continue
		}

		tx := model.TollTransaction{
			PostingDate:     strings.TrimSpace(rec[colPostingDate]),
			TagOrVehicleReg: strings.TrimSpace(rec[colTag]),
			TransactionDate: txDate,
			TransactionTime: strings.TrimSpace(rec[colTransactionTime]),
			Facility:        strings.TrimSpace(rec[colFacility]),
			EntryPlaza:      strings.TrimSpace(rec[colEntryPlaza]),
			ExitPlaza:       strings.TrimSpace(rec[colExitPlaza]),
			Amount:          ParseAmount(tollRaw),
			AmountRaw:       tollRaw,
		}
		tx.Timestamp = parseTimestamp(tx.TransactionDate, tx.TransactionTime)
		if len(rec) > colEligible && rec[colEligible] == eligibleToken {
			tx.Eligible = true
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ParseAmount converts a display amount like "$3.10" or "$.80" into a
// non-negative decimal. Anything unparsable resolves to 0.0, never an error.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseTimestamp(date, clock string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, date+" "+clock); err == nil {
			return t
		}
	}
	return time.Time{}
}
