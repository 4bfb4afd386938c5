package account

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const downloadPollInterval = 2 * time.Second

// waitForFile polls the download directory until a fully-downloaded
// file matching the prefix appears. Chrome writes in-progress files
// with a .crdownload suffix, so a matching name without that suffix
// means the download finished.
func waitForFile(ctx context.Context, dir, prefix string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", fmt.Errorf("read download directory: %w", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasPrefix(name, prefix) {
				continue
			}
			if strings.HasSuffix(name, ".crdownload") {
				continue
			}
			return name, nil
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("no download matching %q after %s", prefix, timeout)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(downloadPollInterval):
		}
	}
}

// moveFile moves a download into a processing directory, replacing any
// stale copy at the destination. Renames across filesystems fail, so
// fall back to a copy.
func moveFile(name, fromDir, toDir string) (string, error) {
	src := filepath.Join(fromDir, name)
	dst := filepath.Join(toDir, name)

	err := os.Remove(dst)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("replace %s: %w", dst, err)
	}

	err = os.Rename(src, dst)
	if err == nil {
		return dst, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("move %s: %w", name, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("move %s: %w", name, err)
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	if err != nil {
		return "", fmt.Errorf("move %s: %w", name, err)
	}
	err = os.Remove(src)
	if err != nil {
		return "", fmt.Errorf("move %s: %w", name, err)
	}
	return dst, nil
}

// cleanupPartialDownloads removes .crdownload leftovers from a run that
// timed out or crashed mid-download.
func cleanupPartialDownloads(ctx context.Context, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".crdownload") {
			path := filepath.Join(dir, entry.Name())
			err = os.Remove(path)
			if err != nil {
				slog.WarnContext(ctx, "failed to remove partial download", "path", path, "err", err)
				continue
			}
			slog.InfoContext(ctx, "removed partial download", "path", path)
		}
	}
}

// unzipArchives extracts every .zip in dir into dir and deletes the
// archive. Bulk standings exports arrive zipped.
func unzipArchives(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		err = extractZip(path, dir)
		if err != nil {
			return fmt.Errorf("extract %s: %w", entry.Name(), err)
		}
		err = os.Remove(path)
		if err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		slog.InfoContext(ctx, "extracted archive", "name", entry.Name())
	}
	return nil
}

func extractZip(path, dir string) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		// archive members are always flat csv files
		name := filepath.Base(file.Name)
		if file.FileInfo().IsDir() || name == "" {
			continue
		}

		in, err := file.Open()
		if err != nil {
			return err
		}
		out, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			in.Close()
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		out.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
