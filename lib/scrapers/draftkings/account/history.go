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
	"strconv"
	"strings"
	"time"

	"dkscrape-backend/lib/scrapers/draftkings"
)

const historyFilename = "draftkings-contest-entry-history.csv"

// DownloadHistory triggers the account-wide contest entry history
// export and moves it into the csv working directory. Returns the
// moved file's path.
func (s *Session) DownloadHistory(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "account.DownloadHistory")
	defer span.End()

	slog.InfoContext(ctx, "downloading contest entry history")

	err := s.download(ctx, draftkings.ContestHistoryURL)
	if err != nil {
		return "", err
	}

	name, err := waitForFile(ctx, s.env.DownloadDirectory, historyFilename, time.Minute)
	if err != nil {
		cleanupPartialDownloads(ctx, s.env.DownloadDirectory)
		return "", fmt.Errorf("contest entry history: %w", err)
	}

	path, err := moveFile(name, s.env.DownloadDirectory, s.env.CSVDirectory)
	if err != nil {
		return "", fmt.Errorf("contest entry history: %w", err)
	}
	slog.InfoContext(ctx, "downloaded contest entry history", "path", path)

	if s.state == StateDownloadTriggered {
		err = s.advance(StateFileMoved)
		if err != nil {
			return "", err
		}
	}
	return path, nil
}

// ProcessHistory parses a previously downloaded history export and
// moves it to imported/ on success.
func ProcessHistory(ctx context.Context, env Environment, path string) ([]HistoryEntry, error) {
	ctx, span := tracer.Start(ctx, "account.ProcessHistory")
	defer span.End()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history export: %w", err)
	}
	historyEntries, err := ParseHistoryCSV(ctx, file, env.Username)
	file.Close()
	if err != nil {
		moveToDir(ctx, filepath.Base(path), filepath.Dir(path), env.FailedDir())
		return nil, err
	}

	moveToDir(ctx, filepath.Base(path), filepath.Dir(path), env.ImportedDir())
	return historyEntries, nil
}

// ParseHistoryCSV reads the contest entry history export. Private
// league entries are skipped, they have no scrapable contest pages.
func ParseHistoryCSV(ctx context.Context, r io.Reader, username string) ([]HistoryEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty history export")
	}
	if err != nil {
		return nil, fmt.Errorf("read history export: %w", err)
	}

	var historyEntries []HistoryEntry
	skippedLeagues := 0
	dropped := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read history export: %w", err)
		}

		row := map[string]string{}
		for i, header := range headers {
			if i < len(record) {
				row[strings.TrimSpace(header)] = record[i]
			}
		}
		if row["Entry_Key"] == "" {
			continue
		}
		if strings.Contains(row["Entry"], "League") {
			skippedLeagues++
			continue
		}

		historyEntry, err := historyEntryFromRow(row, username)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "skipping malformed history row", "entry_key", row["Entry_Key"], "err", err)
			continue
		}
		historyEntries = append(historyEntries, historyEntry)
	}

	if skippedLeagues > 0 {
		slog.InfoContext(ctx, "skipped league entries", "count", skippedLeagues)
	}
	if dropped > 0 {
		slog.WarnContext(ctx, "skipped history rows due to parse errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed contest entry history", "count", len(historyEntries))

	return historyEntries, nil
}

func historyEntryFromRow(row map[string]string, username string) (HistoryEntry, error) {
	entryID, err := strconv.ParseInt(row["Entry_Key"], 10, 64)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("entry key %q: %w", row["Entry_Key"], err)
	}
	contestID, err := strconv.ParseInt(row["Contest_Key"], 10, 64)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("contest key %q: %w", row["Contest_Key"], err)
	}
	rank, err := strconv.Atoi(row["Place"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("place %q: %w", row["Place"], err)
	}
	points, err := strconv.ParseFloat(row["Points"], 64)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("points %q: %w", row["Points"], err)
	}
	contestEntries, err := strconv.Atoi(row["Contest_Entries"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("contest entries %q: %w", row["Contest_Entries"], err)
	}
	placesPaid, err := strconv.Atoi(row["Places_Paid"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("places paid %q: %w", row["Places_Paid"], err)
	}

	winningsNonTicket, err := parseMoney(row["Winnings_Non_Ticket"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("winnings: %w", err)
	}
	winningsTicket, err := parseMoney(row["Winnings_Ticket"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("ticket winnings: %w", err)
	}
	entryFee, err := parseMoney(row["Entry_Fee"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("entry fee: %w", err)
	}
	prizePool, err := parseMoney(row["Prize_Pool"])
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("prize pool: %w", err)
	}

	record := HistoryEntry{
		EntryID:           entryID,
		ContestID:         contestID,
		Sport:             row["Sport"],
		GameType:          row["Game_Type"],
		Entry:             row["Entry"],
		Opponent:          parseOpponent(row["Entry"], username),
		ContestDateEST:    row["Contest_Date_EST"],
		LineupRank:        rank,
		Points:            points,
		WinningsNonTicket: winningsNonTicket,
		WinningsTicket:    winningsTicket,
		ContestEntries:    contestEntries,
		EntryFee:          entryFee,
		PrizePool:         prizePool,
		PlacesPaid:        placesPaid,
	}
	err = draftkings.Validate(record)
	if err != nil {
		return HistoryEntry{}, err
	}
	return record, nil
}

func parseMoney(value string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, "$", ""), ",", "")
	if cleaned == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q: %w", value, err)
	}
	return parsed, nil
}

// parseOpponent pulls the other player out of head-to-head entry names
// like "alice vs. bob ($5)". Non head-to-head entries have no opponent.
func parseOpponent(entry, username string) string {
	idx := strings.Index(entry, " vs. ")
	if idx < 0 {
		return ""
	}

	left := strings.TrimSpace(entry[:idx])
	right := strings.TrimSpace(entry[idx+len(" vs. "):])
	if paren := strings.Index(right, " ("); paren >= 0 {
		right = strings.TrimSpace(right[:paren])
	}

	if strings.EqualFold(left, username) {
		return right
	}
	return left
}
