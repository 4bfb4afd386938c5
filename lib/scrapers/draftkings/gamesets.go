package draftkings

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// ScrapeGameSets validates the lobby's game set section, keeping the
// nested competitions and game styles. An optional tag allow-list
// (e.g. "Featured") narrows the result.
func ScrapeGameSets(ctx context.Context, lobby *Lobby, tags []string) []GameSet {
	slog.InfoContext(ctx, "parsing game sets", "sport", lobby.Sport)

	var gameSets []GameSet
	dropped := 0

	for _, raw := range lobby.GameSets {
		if len(tags) > 0 && !slices.Contains(tags, raw.Tag) {
			continue
		}

		set := GameSet{
			GameSetKey:             raw.GameSetKey,
			ContestStartTimeSuffix: strings.TrimSpace(raw.ContestStartTimeSuffix),
			Tag:                    raw.Tag,
			SortOrder:              raw.SortOrder,
			MinStartTime:           raw.MinStartTime,
		}
		for _, comp := range raw.Competitions {
			set.Competitions = append(set.Competitions, Competition(comp))
		}
		for _, style := range raw.GameStyles {
			set.GameStyles = append(set.GameStyles, GameStyle(style))
		}

		err := Validate(set)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "validation error for game set", "game_set_key", raw.GameSetKey, "err", err)
			continue
		}
		gameSets = append(gameSets, set)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped game sets due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed game sets", "sport", lobby.Sport, "count", len(gameSets))

	return gameSets
}
