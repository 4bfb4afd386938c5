package draftkings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrapeGameTypes(t *testing.T) {
	lobby := loadLobbyFixture(t)

	gameTypes := ScrapeGameTypes(context.Background(), lobby)
	require.Len(t, gameTypes, 2)

	classic := gameTypes[0]
	require.Equal(t, int64(1), classic.GameTypeID)
	require.Equal(t, "Classic", classic.Name)
	require.Equal(t, "SalaryCap", classic.DraftType)
	// the game style blob stays serialized
	require.JSONEq(t, `{"GameStyleId": 1, "Name": "Classic"}`, classic.GameStyle)
}

func TestScrapeGameTypesDropsInvalid(t *testing.T) {
	lobby := &Lobby{
		Sport: "NFL",
		GameTypes: []RawGameType{
			{GameTypeID: 1, Name: "Classic", SportID: 1},
			{GameTypeID: 0, Name: "Broken", SportID: 1},
			{GameTypeID: 2, Name: "", SportID: 1},
		},
	}

	gameTypes := ScrapeGameTypes(context.Background(), lobby)
	require.Len(t, gameTypes, 1)
	require.Equal(t, "Classic", gameTypes[0].Name)
}
