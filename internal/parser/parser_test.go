package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TollSentinel/internal/portal"
)

const sampleFeed = portal.FeedHeader + "\n" +
	`"02/06/2025","12D12345","01/06/2025","08:12:44","M50","","","$3.10","Yes"` + "\n" +
	`"02/06/2025","12D12345","01/06/2025","17:45:02","Dublin Tunnel, North","Entry, A","Exit, B","$.80","No"` + "\n" +
	`"03/06/2025","12D12345","02/06/2025","09:01:10","M50","","","$3.10","Yes"` + "\n" +
	`"","","","","","","","",""` + "\n" +
	`"Total","","","","","","","",""` + "\n"

func TestParse_BasicFeed(t *testing.T) {
	txs, err := Parse(sampleFeed)
	require.NoError(t, err)
	require.Len(t, txs, 3, "footer and blank rows must be skipped")

	first := txs[0]
	assert.Equal(t, "02/06/2025", first.PostingDate)
	assert.Equal(t, "01/06/2025", first.TransactionDate)
	assert.Equal(t, "08:12:44", first.TransactionTime)
	assert.Equal(t, "M50", first.Facility)
	assert.Equal(t, 3.10, first.Amount)
	assert.Equal(t, "$3.10", first.AmountRaw)
	assert.True(t, first.Eligible)
	assert.False(t, first.Timestamp.IsZero())

	// Quoted fields containing commas must survive intact.
	second := txs[1]
	assert.Equal(t, "Dublin Tunnel, North", second.Facility)
	assert.Equal(t, "Entry, A", second.EntryPlaza)
	assert.Equal(t, "Exit, B", second.ExitPlaza)
	assert.Equal(t, 0.80, second.Amount)
	assert.False(t, second.Eligible)
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse(sampleFeed)
	require.NoError(t, err)
	b, err := Parse(sampleFeed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_SourceOrderPreserved(t *testing.T) {
	txs, err := Parse(sampleFeed)
	require.NoError(t, err)
	assert.Equal(t, "08:12:44", txs[0].TransactionTime)
	assert.Equal(t, "17:45:02", txs[1].TransactionTime)
	assert.Equal(t, "09:01:10", txs[2].TransactionTime)
}

func TestParse_EligibilityIsExact(t *testing.T) {
	feed := portal.FeedHeader + "\n" +
		`"d","t","01/06/2025","08:00","F","","","$1.00","Yes"` + "\n" +
		`"d","t","01/06/2025","08:01","F","","","$1.00","yes"` + "\n" +
		`"d","t","01/06/2025","08:02","F","","","$1.00","YES"` + "\n" +
		`"d","t","01/06/2025","08:03","F","","","$1.00",""` + "\n" +
		`"d","t","01/06/2025","08:04","F","","","$1.00","No"` + "\n"
	txs, err := Parse(feed)
	require.NoError(t, err)
	require.Len(t, txs, 5)
	assert.True(t, txs[0].Eligible)
	for i := 1; i < 5; i++ {
		assert.False(t, txs[i].Eligible, "row %d should not be eligible", i)
	}
}

func TestParse_UnparsableAmountIsZero(t *testing.T) {
	feed := portal.FeedHeader + "\n" +
		`"d","t","01/06/2025","08:00","F","","","N/A","Yes"` + "\n"
	txs, err := Parse(feed)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 0.0, txs[0].Amount)
	assert.Equal(t, "N/A", txs[0].AmountRaw)
}

func TestParse_HeaderOnly(t *testing.T) {
	txs, err := Parse(portal.FeedHeader + "\n")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"$.80", 0.80},
		{"$0.80", 0.80},
		{"$3.10", 3.10},
		{"$12.00", 12.00},
		{"3.10", 3.10},
		{"garbage", 0},
		{"$", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.raw), "ParseAmount(%q)", tt.raw)
	}
}
