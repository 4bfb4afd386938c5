package account

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseHistoryCSV(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "contest-entry-history.csv"))
	require.NoError(t, err)
	defer file.Close()

	historyEntries, err := ParseHistoryCSV(context.Background(), file, "casualfan")
	require.NoError(t, err)

	// the league row is dropped
	require.Len(t, historyEntries, 3)

	require.Empty(t, cmp.Diff(HistoryEntry{
		EntryID:           4500000001,
		ContestID:         170000001,
		Sport:             "NFL",
		GameType:          "Classic",
		Entry:             "NFL $1M Fantasy Football Millionaire",
		ContestDateEST:    "2025-10-12 13:00:00",
		LineupRank:        184,
		Points:            312.54,
		WinningsNonTicket: 1000,
		ContestEntries:    150000,
		EntryFee:          20,
		PrizePool:         1000000,
		PlacesPaid:        35000,
	}, historyEntries[0]))

	headToHead := historyEntries[1]
	require.Equal(t, int64(170000002), headToHead.ContestID)
	require.Equal(t, "sharkbait", headToHead.Opponent)

	ticketWin := historyEntries[2]
	require.Equal(t, float64(5), ticketWin.WinningsTicket)
	require.Equal(t, float64(0), ticketWin.WinningsNonTicket)
}

func TestParseOpponent(t *testing.T) {
	testCases := []struct {
		entry    string
		username string
		opponent string
	}{
		{"casualfan vs. sharkbait ($5)", "casualfan", "sharkbait"},
		{"sharkbait vs. casualfan ($5)", "casualfan", "sharkbait"},
		{"alice vs. bob", "alice", "bob"},
		{"NFL $1M Fantasy Football Millionaire", "casualfan", ""},
	}
	for _, testCase := range testCases {
		require.Equal(t, testCase.opponent,
			parseOpponent(testCase.entry, testCase.username), testCase.entry)
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		value  string
		amount float64
	}{
		{"$1,000,000.00", 1000000},
		{"$0.00", 0},
		{"$5.50", 5.5},
		{"", 0},
		{"123.45", 123.45},
	}
	for _, testCase := range testCases {
		amount, err := parseMoney(testCase.value)
		require.NoError(t, err, testCase.value)
		require.Equal(t, testCase.amount, amount, testCase.value)
	}

	_, err := parseMoney("$abc")
	require.Error(t, err)
}

func TestProcessHistoryMovesFile(t *testing.T) {
	root := t.TempDir()
	env := Environment{
		Username:          "casualfan",
		DownloadDirectory: root,
		CSVDirectory:      filepath.Join(root, "csv"),
	}
	require.NoError(t, os.MkdirAll(env.CSVDirectory, 0o755))
	require.NoError(t, env.EnsureDirectories())

	fixture, err := os.ReadFile(filepath.Join("testdata", "contest-entry-history.csv"))
	require.NoError(t, err)
	path := filepath.Join(env.CSVDirectory, historyFilename)
	require.NoError(t, os.WriteFile(path, fixture, 0o644))

	historyEntries, err := ProcessHistory(context.Background(), env, path)
	require.NoError(t, err)
	require.Len(t, historyEntries, 3)

	require.FileExists(t, filepath.Join(env.ImportedDir(), historyFilename))
	require.NoFileExists(t, path)
}
