package draftkings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrapeContests(t *testing.T) {
	lobby := loadLobbyFixture(t)

	contests := ScrapeContests(context.Background(), lobby, ContestFilter{})

	// the fixture's satellite, non-guaranteed, small-field and
	// small-double-up contests are all filtered out
	require.Equal(t, []int64{170000001, 170000004, 170000006, 170000008}, ContestIDs(contests))

	millionaire := contests[0]
	require.Equal(t, "NFL $1M Fantasy Football Millionaire [$250K to 1st]", millionaire.Name)
	require.Equal(t, int64(90001), millionaire.DraftGroupID)
	require.Equal(t, float64(1000000), millionaire.PrizePool)
	require.Equal(t, "https://www.draftkings.com/draft/contest/170000001", millionaire.ContestURL)
	require.True(t, millionaire.Guaranteed)
	require.True(t, millionaire.Starred)
	require.False(t, millionaire.DoubleUp)
	require.JSONEq(t, `{"Cash": "$1,000,000.00"}`, millionaire.PrizeDescription)
	require.JSONEq(t, `{"IsGuaranteed": "true", "IsStarred": "true"}`, millionaire.Attributes)

	doubleUp := contests[1]
	require.True(t, doubleUp.DoubleUp)
	require.False(t, doubleUp.FiftyFifty)
}

func TestScrapeContestsDraftGroupFilter(t *testing.T) {
	lobby := loadLobbyFixture(t)

	contests := ScrapeContests(context.Background(), lobby, ContestFilter{
		DraftGroupIDs: []int64{90002},
	})

	require.Equal(t, []int64{170000008}, ContestIDs(contests))
}

func TestScrapeContestsEmptyLobby(t *testing.T) {
	contests := ScrapeContests(context.Background(), &Lobby{Sport: "NFL"}, ContestFilter{})
	require.Empty(t, contests)
}

func TestIsExcludedContestName(t *testing.T) {
	testCases := []struct {
		name     string
		excluded bool
	}{
		{"NFL Satellite to the Millionaire", true},
		{"NBA SuperSat Qualifier", true},
		{"Reignmakers Showdown Special", true},
		{"NFL $1M Fantasy Football Millionaire", false},
		{"NFL $10K Double Up", false},
	}
	for _, testCase := range testCases {
		require.Equal(t, testCase.excluded, isExcludedContestName(testCase.name), testCase.name)
	}
}
