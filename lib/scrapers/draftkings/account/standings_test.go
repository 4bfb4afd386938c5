package account

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseStandingsCSV(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "contest-standings-170000001.csv"))
	require.NoError(t, err)
	defer file.Close()

	entries, players, err := ParseStandingsCSV(170000001, file)
	require.NoError(t, err)

	expectedEntries := []ContestEntry{
		{
			ContestID:    170000001,
			EntryID:      4500000001,
			EntryName:    "sharkbait",
			Entry:        2,
			TotalEntries: 150,
			LineupRank:   1,
			Points:       312.54,
			Lineup:       "QB Josh Allen RB Bijan Robinson",
		},
		{
			ContestID:    170000001,
			EntryID:      4500000002,
			EntryName:    "casualfan",
			Entry:        1,
			TotalEntries: 1,
			LineupRank:   2,
			Points:       298.10,
			Lineup:       "QB Jalen Hurts RB Saquon Barkley",
		},
		{
			ContestID:    170000001,
			EntryID:      4500000003,
			EntryName:    "sharkbait",
			Entry:        1,
			TotalEntries: 150,
			LineupRank:   3,
			Points:       287.66,
			Lineup:       "QB Lamar Jackson RB Derrick Henry",
		},
	}
	require.Empty(t, cmp.Diff(expectedEntries, entries))

	require.Len(t, players, 4)
	require.Empty(t, cmp.Diff(PlayerResult{
		ContestID:      170000001,
		Player:         "Josh Allen",
		RosterPosition: "QB",
		PercentDrafted: 42.10,
		FPTS:           28.54,
	}, players[0]))
	// ownership rows keep coming after the entry rows run out
	require.Equal(t, "Jalen Hurts", players[3].Player)
}

func TestParseStandingsCSVEmpty(t *testing.T) {
	_, _, err := ParseStandingsCSV(1, strings.NewReader(""))
	require.ErrorContains(t, err, "empty export")

	header := "Rank,EntryId,EntryName,TimeRemaining,Points,Lineup,,Player,Roster Position,%Drafted,FPTS\n"
	_, _, err = ParseStandingsCSV(1, strings.NewReader(header))
	require.ErrorContains(t, err, "no rows")
}

func TestSplitEntryName(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		entry    int
		total    int
	}{
		{name: "sharkbait (2/150)", username: "sharkbait", entry: 2, total: 150},
		{name: "casualfan", username: "casualfan", entry: 1, total: 1},
		{name: "weird (name)", username: "weird (name)", entry: 1, total: 1},
		{name: "nested (a) (3/20)", username: "nested (a)", entry: 3, total: 20},
	}
	for _, testCase := range testCases {
		username, entry, total, err := splitEntryName(testCase.name)
		require.NoError(t, err, testCase.name)
		require.Equal(t, testCase.username, username, testCase.name)
		require.Equal(t, testCase.entry, entry, testCase.name)
		require.Equal(t, testCase.total, total, testCase.name)
	}
}

func TestContestIDFromFilename(t *testing.T) {
	id, err := contestIDFromFilename("contest-standings-170000001.csv")
	require.NoError(t, err)
	require.Equal(t, int64(170000001), id)

	id, err = contestIDFromFilename("contest-standings-170000001 (1).csv")
	require.NoError(t, err)
	require.Equal(t, int64(170000001), id)

	_, err = contestIDFromFilename("contest-standings-.csv")
	require.Error(t, err)
	_, err = contestIDFromFilename("draftkings-contest-entry-history.csv")
	require.Error(t, err)
}

func TestProcessStandings(t *testing.T) {
	root := t.TempDir()
	env := Environment{
		DownloadDirectory: root,
		CSVDirectory:      filepath.Join(root, "csv"),
	}
	require.NoError(t, os.MkdirAll(env.StandingsDir(), 0o755))
	require.NoError(t, env.EnsureDirectories())

	fixture, err := os.ReadFile(filepath.Join("testdata", "contest-standings-170000001.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(
		filepath.Join(env.StandingsDir(), "contest-standings-170000001.csv"), fixture, 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(env.StandingsDir(), "contest-standings-170000002.csv"), nil, 0o644))

	result, err := ProcessStandings(context.Background(), env)
	require.NoError(t, err)

	require.Equal(t, []int64{170000001}, result.Successful)
	require.Len(t, result.Entries, 3)
	require.Len(t, result.PlayerResults, 4)
	require.Len(t, result.Failed, 1)
	require.Equal(t, int64(170000002), result.Failed[0].ContestID)

	// parsed files move out of the working directory
	require.FileExists(t, filepath.Join(env.ImportedDir(), "contest-standings-170000001.csv"))
	require.FileExists(t, filepath.Join(env.FailedDir(), "contest-standings-170000002.csv"))
	require.NoFileExists(t, filepath.Join(env.StandingsDir(), "contest-standings-170000001.csv"))
}
