package draftkings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"dkscrape-backend/lib/timezone"
)

var ErrNotFound = errors.New("not found")

// contest names containing any of these are promo formats the
// pipeline never tracks
var excludedContestNames = []string{"satellite", "supersat", "reignmakers"}

type ContestFilter struct {
	// allow-list of draft group ids, empty means no filtering
	DraftGroupIDs []int64
}

// ScrapeContests filters and validates the lobby's contest section.
// Records that fail validation are logged and dropped.
func ScrapeContests(ctx context.Context, lobby *Lobby, filter ContestFilter) []Contest {
	slog.InfoContext(ctx, "collecting contest ids", "sport", lobby.Sport)

	var contests []Contest
	dropped := 0

	for _, raw := range lobby.Contests {
		if len(filter.DraftGroupIDs) > 0 && !slices.Contains(filter.DraftGroupIDs, raw.DraftGroupID) {
			continue
		}
		if isExcludedContestName(raw.Name) {
			continue
		}

		_, guaranteed := raw.Attributes["IsGuaranteed"]
		if !guaranteed {
			continue
		}
		if raw.MaxEntries <= 100 && raw.EntryFee <= 25 {
			continue
		}
		_, doubleUp := raw.Attributes["IsDoubleUp"]
		_, fiftyFifty := raw.Attributes["IsFiftyfifty"]
		if (doubleUp || fiftyFifty) && raw.MaxEntries <= 100 {
			continue
		}

		attrJson, err := json.Marshal(raw.Attributes)
		if err != nil {
			attrJson = nil
		}

		_, starred := raw.Attributes["IsStarred"]
		_, league := raw.Attributes["League"]
		_, multiplier := raw.Attributes["IsSteps"]
		_, qualifier := raw.Attributes["IsQualifier"]

		contest := Contest{
			ContestID:        raw.ID,
			Name:             raw.Name,
			EntryFee:         raw.EntryFee,
			CrownAmount:      raw.CrownAmount,
			MaxEntries:       raw.MaxEntries,
			EntriesPerUser:   raw.MaxEntriesPerUser,
			DraftGroupID:     raw.DraftGroupID,
			PrizeDescription: string(raw.PrizeDescription),
			Attributes:       string(attrJson),
			PrizePool:        raw.PrizePool,
			ContestDate:      raw.StartDateString,
			ContestURL:       fmt.Sprintf("https://www.draftkings.com/draft/contest/%d", raw.ID),
			Guaranteed:       guaranteed,
			Starred:          starred,
			DoubleUp:         doubleUp,
			FiftyFifty:       fiftyFifty,
			League:           league,
			Multiplier:       multiplier,
			Qualifier:        qualifier,
		}

		err = Validate(contest)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "validation error for contest", "contest_id", raw.ID, "err", err)
			continue
		}
		contests = append(contests, contest)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped contests due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed contests", "sport", lobby.Sport, "count", len(contests))

	return contests
}

func isExcludedContestName(name string) bool {
	lowered := strings.ToLower(name)
	for _, excluded := range excludedContestNames {
		if strings.Contains(lowered, excluded) {
			return true
		}
	}
	return false
}

// ContestIDs extracts the id list a downstream payout scrape filters by.
func ContestIDs(contests []Contest) []int64 {
	ids := make([]int64, len(contests))
	for i, c := range contests {
		ids[i] = c.ContestID
	}
	return ids
}

type contestDetailResponse struct {
	ContestDetail struct {
		Name               string `json:"name"`
		ContestStateDetail string `json:"contestStateDetail"`
		ContestStartTime   string `json:"contestStartTime"`
		MaximumEntries     int64  `json:"maximumEntries"`
	} `json:"contestDetail"`
}

// FetchContestDetail pulls live status (final/cancelled/start time) for
// one contest from the contests API. A 404 yields ErrNotFound so
// callers can skip rather than fail the batch.
func (c *Client) FetchContestDetail(ctx context.Context, contestID int64) (ContestDetail, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf(ContestAPIURL, contestID))
	if err != nil {
		return ContestDetail{}, err
	}
	if res.StatusCode() == 404 {
		return ContestDetail{}, fmt.Errorf("contest %d: %w", contestID, ErrNotFound)
	}
	if res.IsError() {
		return ContestDetail{}, fmt.Errorf("contest %d: status %d", contestID, res.StatusCode())
	}

	var body contestDetailResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		return ContestDetail{}, fmt.Errorf("decode contest %d: %w", contestID, err)
	}

	state := strings.ToLower(strings.TrimSpace(body.ContestDetail.ContestStateDetail))
	detail := ContestDetail{
		ContestID:   contestID,
		Name:        body.ContestDetail.Name,
		MaxEntries:  body.ContestDetail.MaximumEntries,
		IsFinal:     state == "completed" || state == "cancelled",
		IsCancelled: state == "cancelled",
	}
	detail.StartTime, err = timezone.ConvertContestTime(body.ContestDetail.ContestStartTime)
	if err != nil {
		return ContestDetail{}, fmt.Errorf("contest %d start time: %w", contestID, err)
	}

	err = Validate(detail)
	if err != nil {
		return ContestDetail{}, err
	}
	return detail, nil
}

// FetchContestDetails runs FetchContestDetail over a list of ids,
// skipping contests that have disappeared.
func (c *Client) FetchContestDetails(ctx context.Context, contestIDs []int64) ([]ContestDetail, error) {
	var details []ContestDetail
	var errlist []error

	for _, id := range contestIDs {
		detail, err := c.FetchContestDetail(ctx, id)
		if errors.Is(err, ErrNotFound) {
			slog.WarnContext(ctx, "contest not found", "contest_id", id)
			continue
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch contest detail", "contest_id", id, "err", err)
			errlist = append(errlist, err)
			continue
		}
		details = append(details, detail)
	}

	return details, errors.Join(errlist...)
}
