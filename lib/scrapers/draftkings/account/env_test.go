package account

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentFromEnv(t *testing.T) {
	t.Setenv("DK_EMAIL", "someone@example.com")
	t.Setenv("DK_PASSWORD", "hunter2")
	t.Setenv("DK_USERNAME", "casualfan")
	t.Setenv("DOWNLOAD_DIRECTORY", "/tmp/downloads")
	t.Setenv("CSV_DIRECTORY", "/tmp/csv")

	env, err := EnvironmentFromEnv()
	require.NoError(t, err)
	require.Equal(t, "someone@example.com", env.Email)
	require.True(t, env.Headless)
	require.Equal(t, filepath.Join("/tmp/csv", "imported"), env.ImportedDir())
	require.Equal(t, filepath.Join("/tmp/csv", "failed"), env.FailedDir())
}

func TestEnvironmentFromEnvMissingCredentials(t *testing.T) {
	t.Setenv("DK_EMAIL", "")
	t.Setenv("DK_PASSWORD", "")
	t.Setenv("DK_USERNAME", "")
	t.Setenv("DOWNLOAD_DIRECTORY", "/tmp/downloads")
	t.Setenv("CSV_DIRECTORY", "/tmp/csv")

	_, err := EnvironmentFromEnv()
	require.Error(t, err)
}
