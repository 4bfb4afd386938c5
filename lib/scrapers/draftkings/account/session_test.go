package account

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionStateAdvancesForwardOnly(t *testing.T) {
	s := &Session{state: StateNotLoggedIn}

	require.NoError(t, s.advance(StateLoggedIn))
	require.NoError(t, s.advance(StateDownloadTriggered))
	require.NoError(t, s.advance(StateFileMoved))
	require.NoError(t, s.advance(StateParsed))

	// no wrapping around or skipping
	require.Error(t, s.advance(StateLoggedIn))

	s = &Session{state: StateNotLoggedIn}
	require.Error(t, s.advance(StateDownloadTriggered))
}

func TestMarkParsed(t *testing.T) {
	s := &Session{state: StateFileMoved}
	require.NoError(t, s.MarkParsed())
	require.Equal(t, StateParsed, s.State())

	// parsing only follows a completed download
	s = &Session{state: StateLoggedIn}
	require.Error(t, s.MarkParsed())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "not_logged_in", StateNotLoggedIn.String())
	require.Equal(t, "parsed", StateParsed.String())
	require.Equal(t, "unknown", State(99).String())
}
