package draftkings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

type sportsResponse struct {
	Sports []struct {
		SportID                    int64  `json:"sportId"`
		FullName                   string `json:"fullName"`
		SortOrder                  int    `json:"sortOrder"`
		HasPublicContests          bool   `json:"hasPublicContests"`
		IsEnabled                  bool   `json:"isEnabled"`
		RegionFullSportName        string `json:"regionFullSportName"`
		RegionAbbreviatedSportName string `json:"regionAbbreviatedSportName"`
	} `json:"sports"`
}

// ScrapeSports fetches the site-wide sports list.
func (c *Client) ScrapeSports(ctx context.Context) ([]Sport, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(SportsURL)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch sports: status %d", res.StatusCode())
	}

	var body sportsResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		return nil, fmt.Errorf("decode sports: %w", err)
	}

	return parseSports(ctx, body), nil
}

func parseSports(ctx context.Context, body sportsResponse) []Sport {
	var sports []Sport
	dropped := 0

	for _, raw := range body.Sports {
		sport := Sport{
			SportID:                    raw.SportID,
			FullName:                   raw.FullName,
			SortOrder:                  raw.SortOrder,
			HasPublicContests:          raw.HasPublicContests,
			IsEnabled:                  raw.IsEnabled,
			RegionFullSportName:        raw.RegionFullSportName,
			RegionAbbreviatedSportName: raw.RegionAbbreviatedSportName,
		}

		err := Validate(sport)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "validation error for sport", "sport_id", raw.SportID, "err", err)
			continue
		}
		sports = append(sports, sport)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped sports due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed sports", "count", len(sports))

	return sports
}
