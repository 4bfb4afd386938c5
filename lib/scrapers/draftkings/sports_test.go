package draftkings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSports(t *testing.T) {
	var body sportsResponse
	err := json.Unmarshal([]byte(`{
		"sports": [
			{"sportId": 1, "fullName": "Football", "sortOrder": 1, "hasPublicContests": true,
			 "isEnabled": true, "regionFullSportName": "Football", "regionAbbreviatedSportName": "NFL"},
			{"sportId": 2, "fullName": "Basketball", "sortOrder": 2, "hasPublicContests": true,
			 "isEnabled": true, "regionFullSportName": "Basketball", "regionAbbreviatedSportName": "NBA"},
			{"sportId": 0, "fullName": "Broken", "sortOrder": 3, "hasPublicContests": false,
			 "isEnabled": false, "regionFullSportName": "", "regionAbbreviatedSportName": ""}
		]
	}`), &body)
	require.NoError(t, err)

	sports := parseSports(context.Background(), body)

	// the zero-id entry fails validation
	require.Len(t, sports, 2)
	require.Equal(t, int64(1), sports[0].SportID)
	require.Equal(t, "NFL", sports[0].RegionAbbreviatedSportName)
	require.Equal(t, "Basketball", sports[1].FullName)
}
