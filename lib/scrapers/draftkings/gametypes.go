package draftkings

import (
	"context"
	"log/slog"
)

// ScrapeGameTypes validates the lobby's game type section. GameStyle
// stays a serialized JSON blob, downstream consumers treat it as
// opaque.
func ScrapeGameTypes(ctx context.Context, lobby *Lobby) []GameType {
	slog.InfoContext(ctx, "parsing game types", "sport", lobby.Sport)

	var gameTypes []GameType
	dropped := 0

	for _, raw := range lobby.GameTypes {
		gt := GameType{
			GameTypeID:  raw.GameTypeID,
			Name:        raw.Name,
			Description: raw.Description,
			Tag:         raw.Tag,
			SportID:     raw.SportID,
			DraftType:   raw.DraftType,
			GameStyle:   string(raw.GameStyle),
		}

		err := Validate(gt)
		if err != nil {
			dropped++
			slog.WarnContext(ctx, "validation error for game type", "game_type_id", raw.GameTypeID, "err", err)
			continue
		}
		gameTypes = append(gameTypes, gt)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped game types due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "parsed game types", "sport", lobby.Sport, "count", len(gameTypes))

	return gameTypes
}
