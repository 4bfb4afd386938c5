package draftkings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestExtractPayouts(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "draft-page-170000001.html"))
	require.NoError(t, err)
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	require.NoError(t, err)

	payouts, err := extractPayouts(170000001, doc)
	require.NoError(t, err)
	require.Len(t, payouts, 4)

	first := payouts[0]
	require.Equal(t, int64(170000001), first.ContestID)
	require.Equal(t, 1, first.MinPosition)
	require.Equal(t, 1, first.MaxPosition)
	require.Equal(t, "Cash", first.PayoutOneType)
	require.Equal(t, float64(5000), first.PayoutOneValue)
	require.Empty(t, first.PayoutTwoType)

	// cash stays first when a tier pays both cash and a ticket
	mixed := payouts[1]
	require.Equal(t, "Cash", mixed.PayoutOneType)
	require.Equal(t, float64(2000), mixed.PayoutOneValue)
	require.Equal(t, "Ticket", mixed.PayoutTwoType)
	require.Equal(t, float64(0), mixed.PayoutTwoValue)

	// total cash paid out never exceeds the advertised prize pool
	totalPaid := 0.0
	for _, p := range payouts {
		positions := float64(p.MaxPosition - p.MinPosition + 1)
		totalPaid += positions * (p.PayoutOneValue + p.PayoutTwoValue)
	}
	require.LessOrEqual(t, totalPaid, float64(1000000))

	ticketOnly := payouts[2]
	require.Equal(t, 3, ticketOnly.MinPosition)
	require.Equal(t, 5, ticketOnly.MaxPosition)
	require.Equal(t, "Ticket", ticketOnly.PayoutOneType)
	require.Equal(t, float64(0), ticketOnly.PayoutOneValue)
	require.JSONEq(t, `{"Ticket": "$3 NFL Ticket"}`, ticketOnly.OriginalTier)
}

func TestExtractPayoutsMissingScript(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(
		strings.NewReader(`<html><body><script>var x = 1;</script></body></html>`))
	require.NoError(t, err)

	_, err = extractPayouts(42, doc)
	require.Error(t, err)
}

func TestDecodeOrderedTiers(t *testing.T) {
	tiers, err := decodeOrderedTiers(json.RawMessage(`{"Cash":"$100.00","Ticket":"$3 Ticket"}`))
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	require.Equal(t, payoutTier{kind: "Cash", value: "$100.00"}, tiers[0])
	require.Equal(t, payoutTier{kind: "Ticket", value: "$3 Ticket"}, tiers[1])

	// declaration order decides which payout is first, not key order
	tiers, err = decodeOrderedTiers(json.RawMessage(`{"Ticket":"$3 Ticket","Cash":"$100.00"}`))
	require.NoError(t, err)
	require.Equal(t, "Ticket", tiers[0].kind)

	_, err = decodeOrderedTiers(json.RawMessage(`["not","an","object"]`))
	require.Error(t, err)
}

func TestProcessPayoutValue(t *testing.T) {
	testCases := []struct {
		value  string
		kind   string
		amount float64
	}{
		{"$1,000,000.00", "Cash", 1000000},
		{"$5.50", "Cash", 5.5},
		{"$20 NFL Ticket", "Ticket", 0},
		{"$20 NFL Ticket", "TicketDescription", 0},
	}
	for _, testCase := range testCases {
		amount, err := processPayoutValue(testCase.value, testCase.kind)
		require.NoError(t, err, testCase.value)
		require.Equal(t, testCase.amount, amount, testCase.value)
	}

	_, err := processPayoutValue("a boat", "Cash")
	require.Error(t, err)
}
