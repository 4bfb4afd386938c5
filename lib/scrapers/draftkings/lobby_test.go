package draftkings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadLobbyFixture(t *testing.T) *Lobby {
	t.Helper()

	payload, err := os.ReadFile(filepath.Join("testdata", "lobby-nfl.json"))
	require.NoError(t, err)

	lobby, err := ParseLobby("NFL", payload)
	require.NoError(t, err)
	return lobby
}

func TestParseLobby(t *testing.T) {
	lobby := loadLobbyFixture(t)

	require.Equal(t, "NFL", lobby.Sport)
	require.Len(t, lobby.Contests, 8)
	require.Len(t, lobby.DraftGroups, 3)
	require.Len(t, lobby.GameTypes, 2)
	require.Len(t, lobby.GameSets, 2)

	first := lobby.Contests[0]
	require.Equal(t, int64(170000001), first.ID)
	require.Equal(t, float64(20), first.EntryFee)
	require.Contains(t, first.Attributes, "IsGuaranteed")
}

func TestParseLobbyInvalidPayload(t *testing.T) {
	_, err := ParseLobby("NFL", []byte("<html>maintenance</html>"))
	require.Error(t, err)
}
