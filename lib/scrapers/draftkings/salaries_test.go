package draftkings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryCSV(t *testing.T) {
	text, err := os.ReadFile(filepath.Join("testdata", "salaries-90001.csv"))
	require.NoError(t, err)

	salaries, dropped := ParseSalaryCSV(90001, string(text))

	// the row with a missing player id is dropped
	require.Equal(t, 1, dropped)
	require.Len(t, salaries, 3)

	require.Empty(t, cmp.Diff(PlayerSalary{
		DraftGroupID:     90001,
		PlayerID:         11192767,
		Position:         "QB",
		NameID:           "Josh Allen (11192767)",
		Name:             "Josh Allen",
		RosterPosition:   "QB",
		Salary:           8200,
		GameInfo:         "BUF@MIA 10/12/2025 01:00PM ET",
		TeamAbbrev:       "BUF",
		AvgPointsPerGame: 24.52,
	}, salaries[0]))

	// the unquoted comma inside Game Info shifts the row, the parser
	// stitches it back together
	shifted := salaries[1]
	require.Equal(t, "Bijan Robinson", shifted.Name)
	require.Equal(t, "ATL@TB 10/12/2025 04:25PM ET", shifted.GameInfo)
	require.Equal(t, "ATL", shifted.TeamAbbrev)
	require.Equal(t, 21.34, shifted.AvgPointsPerGame)
}

func TestParseSalaryCSVIsIdempotent(t *testing.T) {
	text, err := os.ReadFile(filepath.Join("testdata", "salaries-90001.csv"))
	require.NoError(t, err)

	first, _ := ParseSalaryCSV(90001, string(text))
	second, _ := ParseSalaryCSV(90001, string(text))
	require.Empty(t, cmp.Diff(first, second))
}

func TestParseSalaryCSVNoHeader(t *testing.T) {
	salaries, dropped := ParseSalaryCSV(90001, "this is not a draftable export\nat all\n")
	require.Empty(t, salaries)
	require.Zero(t, dropped)
}
