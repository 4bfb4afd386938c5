package draftkings

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

type DraftGroupFilter struct {
	// allow-list of game type ids, empty means no filtering
	GameTypeIDs []int64
	// allow-list of slate types (trimmed ContestStartTimeSuffix values,
	// e.g. "(Early)"), empty means no filtering
	SlateTypes []string
}

// ScrapeDraftGroups filters and validates the lobby's draft group
// section. The returned groups' ids feed the contest, payout and
// salary stages downstream.
func ScrapeDraftGroups(ctx context.Context, lobby *Lobby, filter DraftGroupFilter) []DraftGroup {
	slog.InfoContext(ctx, "parsing draft groups", "sport", lobby.Sport)

	var groups []DraftGroup
	dropped := 0

	for _, raw := range lobby.DraftGroups {
		if len(filter.GameTypeIDs) > 0 && !slices.Contains(filter.GameTypeIDs, raw.GameTypeID) {
			continue
		}

		suffix := strings.TrimSpace(raw.ContestStartTimeSuffix)
		if len(filter.SlateTypes) > 0 && !slices.Contains(filter.SlateTypes, suffix) {
			continue
		}

		group := DraftGroup{
			DraftGroupID:           raw.DraftGroupID,
			AllowUGC:               raw.AllowUGC,
			ContestStartTimeSuffix: suffix,
			ContestStartTimeType:   raw.ContestStartTimeType,
			ContestTypeID:          raw.ContestTypeID,
			DraftGroupSeriesID:     raw.DraftGroupSeriesID,
			DraftGroupTag:          raw.DraftGroupTag,
			GameCount:              raw.GameCount,
			GameSetKey:             raw.GameSetKey,
			GameType:               raw.GameType,
			GameTypeID:             raw.GameTypeID,
			Games:                  string(raw.Games),
			SortOrder:              raw.SortOrder,
			Sport:                  raw.Sport,
			StartDate:              raw.StartDate,
			StartDateEst:           raw.StartDateEst,
		}

		err := Validate(group)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "validation error for draft group", "draft_group_id", raw.DraftGroupID, "err", err)
			continue
		}
		groups = append(groups, group)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped draft groups due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed draft groups", "sport", lobby.Sport, "count", len(groups))

	return groups
}

// DraftGroupIDs extracts the id list downstream contest and salary
// filters accept without modification.
func DraftGroupIDs(groups []DraftGroup) []int64 {
	ids := make([]int64, len(groups))
	for i, g := range groups {
		ids[i] = g.DraftGroupID
	}
	return ids
}
