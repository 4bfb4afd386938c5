package draftkings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var leadingCommas = regexp.MustCompile("^,+")

// politeness delay between draftable CSV fetches, the endpoint rate
// limits aggressively
const salaryFetchDelay = time.Second * 2

// ScrapeSalaries fetches and parses the draftable player CSV for each
// draft group. Groups that 404 are skipped and counted.
func (c *Client) ScrapeSalaries(ctx context.Context, draftGroupIDs []int64) ([]PlayerSalary, error) {
	slog.InfoContext(ctx, "collecting player csvs", "draft_groups", len(draftGroupIDs))

	var salaries []PlayerSalary
	var errlist []error
	var skipped []int64
	droppedByGroup := map[int64]int{}

	for i, dg := range draftGroupIDs {
		res, err := c.Http.R().
			SetContext(ctx).
			Get(fmt.Sprintf(PlayerCSVURL, dg))
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch player csv", "draft_group_id", dg, "err", err)
			errlist = append(errlist, err)
			continue
		}
		if res.StatusCode() == 404 {
			skipped = append(skipped, dg)
			slog.InfoContext(ctx, "draft group not found, skipping", "draft_group_id", dg)
			continue
		}
		if res.IsError() {
			err = fmt.Errorf("draft group %d: status %d", dg, res.StatusCode())
			slog.ErrorContext(ctx, "failed to fetch player csv", "draft_group_id", dg, "err", err)
			errlist = append(errlist, err)
			continue
		}

		parsed, dropped := ParseSalaryCSV(dg, res.String())
		salaries = append(salaries, parsed...)
		if dropped > 0 {
			droppedByGroup[dg] = dropped
		}

		if i < len(draftGroupIDs)-1 {
			time.Sleep(salaryFetchDelay)
		}
	}

	for dg, count := range droppedByGroup {
		slog.WarnContext(ctx, "skipped players due to validation errors", "draft_group_id", dg, "count", count)
	}
	slog.InfoContext(ctx, "fetched player salaries", "count", len(salaries))
	if len(skipped) > 0 {
		slog.InfoContext(ctx, "skipped draft groups due to 404s", "count", len(skipped))
	}

	return salaries, errors.Join(errlist...)
}

// ParseSalaryCSV parses the draftable CSV for one draft group,
// returning the validated rows and the number dropped.
//
// The export is not well-formed CSV: data rows are preceded by a run
// of empty columns, and the "Game Info" column can contain an unquoted
// comma which shifts every later column right by one. The original
// feed has always been like this, so the parser rewrites each line
// instead of using encoding/csv.
func ParseSalaryCSV(draftGroupID int64, text string) ([]PlayerSalary, int) {
	var headers []string
	inBody := false

	var salaries []PlayerSalary
	dropped := 0

	for _, line := range strings.Split(text, "\n") {
		line = leadingCommas.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, ",", ";")
		line = strings.ReplaceAll(line, "\r", "")

		if strings.Contains(line, "Position") {
			headers = strings.Split(line, ";")
			inBody = true
			continue
		}
		if !inBody {
			continue
		}

		values := strings.Split(line, ";")

		if len(values) == len(headers)+1 {
			gameInfoIdx := -1
			for i, h := range headers {
				if h == "Game Info" {
					gameInfoIdx = i
					break
				}
			}
			if gameInfoIdx >= 0 {
				values[gameInfoIdx] = values[gameInfoIdx] + values[gameInfoIdx+1]
				values = append(values[:gameInfoIdx+1], values[gameInfoIdx+2:]...)
			}
		}
		if len(values) != len(headers) {
			continue
		}

		row := map[string]string{}
		for i, header := range headers {
			row[header] = values[i]
		}

		salary, err := salaryFromRow(draftGroupID, row)
		if err != nil {
			dropped++
			continue
		}
		err = Validate(salary)
		if err != nil {
			dropped++
			continue
		}
		salaries = append(salaries, salary)
	}

	return salaries, dropped
}

func salaryFromRow(draftGroupID int64, row map[string]string) (PlayerSalary, error) {
	id, err := strconv.ParseInt(row["ID"], 10, 64)
	if err != nil {
		return PlayerSalary{}, fmt.Errorf("player id: %w", err)
	}
	salary, err := strconv.ParseFloat(row["Salary"], 64)
	if err != nil {
		return PlayerSalary{}, fmt.Errorf("salary: %w", err)
	}
	avgPoints, err := strconv.ParseFloat(row["AvgPointsPerGame"], 64)
	if err != nil {
		return PlayerSalary{}, fmt.Errorf("avg points per game: %w", err)
	}

	return PlayerSalary{
		DraftGroupID:     draftGroupID,
		PlayerID:         id,
		Position:         row["Position"],
		NameID:           row["Name + ID"],
		Name:             row["Name"],
		RosterPosition:   row["Roster Position"],
		Salary:           salary,
		GameInfo:         row["Game Info"],
		TeamAbbrev:       row["TeamAbbrev"],
		AvgPointsPerGame: avgPoints,
	}, nil
}
