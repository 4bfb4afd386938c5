package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Sport      string `json:"sport"`
	RetryCount int    `json:"retry_count"`
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "dkscrape.json5"),
		[]byte(`{sport: "NFL", retry_count: 3}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "dkscrape.local.json5"),
		[]byte(`{retry_count: 5}`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testSettings](filepath.Join(dir, "dkscrape.json5"))
	require.NoError(t, err)
	require.Equal(t, "NFL", cfg.Sport)
	require.Equal(t, 5, cfg.RetryCount)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testSettings](filepath.Join(dir, "dkscrape.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadOrDefault(t *testing.T) {
	dir := t.TempDir()

	defaults := testSettings{Sport: "MLB", RetryCount: 3}
	cfg, err := ReadOrDefault(filepath.Join(dir, "dkscrape.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)

	err = os.WriteFile(
		filepath.Join(dir, "dkscrape.json5"),
		[]byte(`{sport: "NFL"}`),
		0600,
	)
	require.NoError(t, err)

	cfg, err = ReadOrDefault(filepath.Join(dir, "dkscrape.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, "NFL", cfg.Sport)
	// unset fields fall back to the defaults
	require.Equal(t, 3, cfg.RetryCount)
}
