package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConvertContestTime(t *testing.T) {
	cases := []struct {
		input  string
		expect time.Time
	}{
		{
			input:  "2024-09-08T17:00:00",
			expect: time.Date(2024, time.September, 8, 13, 0, 0, 0, Location),
		},
		{
			// fractional seconds get lopped off
			input:  "2024-09-08T17:00:00.6170000",
			expect: time.Date(2024, time.September, 8, 13, 0, 0, 0, Location),
		},
		{
			// winter, EST rather than EDT
			input:  "2025-01-05T18:00:00",
			expect: time.Date(2025, time.January, 5, 13, 0, 0, 0, Location),
		},
	}

	for _, c := range cases {
		got, err := ConvertContestTime(c.input)
		require.NoError(t, err)
		require.True(t, c.expect.Equal(got), "expected %s, got %s", c.expect, got)
	}
}

func TestConvertContestTimeInvalid(t *testing.T) {
	_, err := ConvertContestTime("not a timestamp")
	require.Error(t, err)
}
