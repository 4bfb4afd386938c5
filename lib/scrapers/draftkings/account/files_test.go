package account

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitForFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contest-standings-42.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contest-standings-43.csv.crdownload"), []byte("x"), 0o644))

	name, err := waitForFile(context.Background(), dir, "contest-standings-42", time.Second)
	require.NoError(t, err)
	require.Equal(t, "contest-standings-42.csv", name)

	// in-progress downloads never match
	_, err = waitForFile(context.Background(), dir, "contest-standings-43", time.Millisecond)
	require.Error(t, err)
}

func TestMoveFile(t *testing.T) {
	from := t.TempDir()
	to := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(from, "a.csv"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(to, "a.csv"), []byte("stale"), 0o644))

	dst, err := moveFile("a.csv", from, to)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(to, "a.csv"), dst)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "new", string(content))
	require.NoFileExists(t, filepath.Join(from, "a.csv"))
}

func TestCleanupPartialDownloads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv.crdownload"), []byte("x"), 0o644))

	cleanupPartialDownloads(context.Background(), dir)

	require.FileExists(t, filepath.Join(dir, "a.csv"))
	require.NoFileExists(t, filepath.Join(dir, "b.csv.crdownload"))
}

func TestUnzipArchives(t *testing.T) {
	dir := t.TempDir()

	archive, err := os.Create(filepath.Join(dir, "standings.zip"))
	require.NoError(t, err)
	writer := zip.NewWriter(archive)
	member, err := writer.Create("contest-standings-42.csv")
	require.NoError(t, err)
	_, err = member.Write([]byte("Rank,EntryId\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, archive.Close())

	require.NoError(t, unzipArchives(context.Background(), dir))

	require.FileExists(t, filepath.Join(dir, "contest-standings-42.csv"))
	require.NoFileExists(t, filepath.Join(dir, "standings.zip"))
}
