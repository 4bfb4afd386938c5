package account

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dkscrape-backend/lib/scrapers/draftkings"
)

const standingsPrefix = "contest-standings-"

// re-downloads of the same contest get " (1)" style suffixes from the
// browser
var standingsFilenameRegex = regexp.MustCompile(`^contest-standings-(\d+)( \(\d+\))?\.csv$`)

// the export carries no header names worth trusting, columns are fixed
// by position
var standingsColumns = []string{
	"rank", "entry_id", "entry_name", "time_remaining", "points",
	"lineup", "empty_column", "player", "roster_position",
	"percent_drafted", "fpts",
}

type StandingsResult struct {
	Entries       []ContestEntry  `json:"entries"`
	PlayerResults []PlayerResult  `json:"player_results"`
	Successful    []int64         `json:"successful"`
	Failed        []FailedContest `json:"failed"`
}

// DownloadStandings triggers the full-standings export for each contest
// and moves the finished files into the csv working directory.
func (s *Session) DownloadStandings(ctx context.Context, contestIDs []int64) error {
	ctx, span := tracer.Start(ctx, "account.DownloadStandings")
	defer span.End()

	slog.InfoContext(ctx, "downloading contest standings", "contests", len(contestIDs))

	for _, contestID := range contestIDs {
		err := s.download(ctx, fmt.Sprintf(draftkings.StandingsExportURL, contestID))
		if err != nil {
			return err
		}

		prefix := fmt.Sprintf("%s%d", standingsPrefix, contestID)
		name, err := waitForFile(ctx, s.env.DownloadDirectory, prefix, time.Minute)
		if err != nil {
			cleanupPartialDownloads(ctx, s.env.DownloadDirectory)
			return fmt.Errorf("contest %d: %w", contestID, err)
		}

		_, err = moveFile(name, s.env.DownloadDirectory, s.env.StandingsDir())
		if err != nil {
			return fmt.Errorf("contest %d: %w", contestID, err)
		}
		slog.InfoContext(ctx, "downloaded standings", "contest_id", contestID, "file", name)
	}

	if s.state == StateDownloadTriggered {
		return s.advance(StateFileMoved)
	}
	return nil
}

// ProcessStandings parses every standings export sitting in the csv
// working directory. Files that parse move to imported/, files that do
// not move to failed/ with the reason logged. A crashed prior run's
// leftovers get picked up the same way.
func ProcessStandings(ctx context.Context, env Environment) (StandingsResult, error) {
	ctx, span := tracer.Start(ctx, "account.ProcessStandings")
	defer span.End()

	err := unzipArchives(ctx, env.StandingsDir())
	if err != nil {
		return StandingsResult{}, err
	}

	entries, err := os.ReadDir(env.StandingsDir())
	if err != nil {
		return StandingsResult{}, fmt.Errorf("read standings directory: %w", err)
	}

	var result StandingsResult
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, standingsPrefix) {
			continue
		}

		contestID, err := contestIDFromFilename(name)
		if err != nil {
			result.Failed = append(result.Failed, FailedContest{Reason: err.Error()})
			moveToDir(ctx, name, env.StandingsDir(), env.FailedDir())
			continue
		}

		file, err := os.Open(filepath.Join(env.StandingsDir(), name))
		if err != nil {
			return StandingsResult{}, fmt.Errorf("open %s: %w", name, err)
		}
		contestEntries, playerResults, err := ParseStandingsCSV(contestID, file)
		file.Close()
		if err != nil {
			result.Failed = append(result.Failed, FailedContest{ContestID: contestID, Reason: err.Error()})
			moveToDir(ctx, name, env.StandingsDir(), env.FailedDir())
			continue
		}

		result.Entries = append(result.Entries, contestEntries...)
		result.PlayerResults = append(result.PlayerResults, playerResults...)
		result.Successful = append(result.Successful, contestID)
		moveToDir(ctx, name, env.StandingsDir(), env.ImportedDir())
	}

	for _, failed := range result.Failed {
		slog.WarnContext(ctx, "failed to process standings export",
			"contest_id", failed.ContestID, "reason", failed.Reason)
	}
	slog.InfoContext(ctx, "processed standings exports",
		"successful", len(result.Successful), "failed", len(result.Failed))

	return result, nil
}

func moveToDir(ctx context.Context, name, from, to string) {
	_, err := moveFile(name, from, to)
	if err != nil {
		slog.ErrorContext(ctx, "failed to move standings export", "file", name, "err", err)
	}
}

func contestIDFromFilename(name string) (int64, error) {
	groups := standingsFilenameRegex.FindStringSubmatch(name)
	if groups == nil {
		return 0, fmt.Errorf("unrecognized standings filename %q", name)
	}
	return strconv.ParseInt(groups[1], 10, 64)
}

// ParseStandingsCSV reads one full-standings export. Each row carries
// both a contest entry (left columns) and, where present, a per-player
// ownership summary (right columns).
func ParseStandingsCSV(contestID int64, r io.Reader) ([]ContestEntry, []PlayerResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// header row
	_, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("contest %d: empty export", contestID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("contest %d: read export: %w", contestID, err)
	}

	var contestEntries []ContestEntry
	var playerResults []PlayerResult
	sawRow := false

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("contest %d: read export: %w", contestID, err)
		}
		sawRow = true

		row := map[string]string{}
		for i, column := range standingsColumns {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		if row["entry_id"] != "" {
			contestEntry, err := standingsEntryFromRow(contestID, row)
			if err != nil {
				return nil, nil, fmt.Errorf("contest %d: %w", contestID, err)
			}
			contestEntries = append(contestEntries, contestEntry)
		}

		if row["player"] != "" {
			playerResult, err := playerResultFromRow(contestID, row)
			if err != nil {
				return nil, nil, fmt.Errorf("contest %d: %w", contestID, err)
			}
			playerResults = append(playerResults, playerResult)
		}
	}

	if !sawRow {
		return nil, nil, fmt.Errorf("contest %d: export has no rows", contestID)
	}
	return contestEntries, playerResults, nil
}

func standingsEntryFromRow(contestID int64, row map[string]string) (ContestEntry, error) {
	rank, err := strconv.Atoi(row["rank"])
	if err != nil {
		return ContestEntry{}, fmt.Errorf("rank %q: %w", row["rank"], err)
	}
	entryID, err := strconv.ParseInt(row["entry_id"], 10, 64)
	if err != nil {
		return ContestEntry{}, fmt.Errorf("entry id %q: %w", row["entry_id"], err)
	}
	points, err := strconv.ParseFloat(row["points"], 64)
	if err != nil {
		return ContestEntry{}, fmt.Errorf("points %q: %w", row["points"], err)
	}

	username, entry, total, err := splitEntryName(row["entry_name"])
	if err != nil {
		return ContestEntry{}, err
	}

	record := ContestEntry{
		ContestID:    contestID,
		EntryID:      entryID,
		EntryName:    username,
		Entry:        entry,
		TotalEntries: total,
		LineupRank:   rank,
		Points:       points,
		Lineup:       row["lineup"],
	}
	err = draftkings.Validate(record)
	if err != nil {
		return ContestEntry{}, fmt.Errorf("entry %d: %w", entryID, err)
	}
	return record, nil
}

// multi-entry users show up as "user (3/150)", single entries as just
// the username
func splitEntryName(name string) (username string, entry, total int, err error) {
	open := strings.LastIndex(name, " (")
	if open < 0 || !strings.HasSuffix(name, ")") {
		return name, 1, 1, nil
	}

	counts := strings.TrimSuffix(name[open+2:], ")")
	parts := strings.SplitN(counts, "/", 2)
	if len(parts) != 2 {
		return name, 1, 1, nil
	}
	entry, err = strconv.Atoi(parts[0])
	if err != nil {
		return "", 0, 0, fmt.Errorf("entry name %q: %w", name, err)
	}
	total, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("entry name %q: %w", name, err)
	}
	return name[:open], entry, total, nil
}

func playerResultFromRow(contestID int64, row map[string]string) (PlayerResult, error) {
	percent, err := strconv.ParseFloat(strings.TrimSuffix(row["percent_drafted"], "%"), 64)
	if err != nil {
		return PlayerResult{}, fmt.Errorf("percent drafted %q: %w", row["percent_drafted"], err)
	}
	fpts, err := strconv.ParseFloat(row["fpts"], 64)
	if err != nil {
		return PlayerResult{}, fmt.Errorf("fpts %q: %w", row["fpts"], err)
	}

	record := PlayerResult{
		ContestID:      contestID,
		Player:         row["player"],
		RosterPosition: row["roster_position"],
		PercentDrafted: percent,
		FPTS:           fpts,
	}
	err = draftkings.Validate(record)
	if err != nil {
		return PlayerResult{}, fmt.Errorf("player %q: %w", row["player"], err)
	}
	return record, nil
}
