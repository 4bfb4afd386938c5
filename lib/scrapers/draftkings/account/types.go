package account

// Records parsed from the authenticated CSV exports.

type ContestEntry struct {
	ContestID    int64   `json:"contest_id" validate:"gt=0"`
	EntryID      int64   `json:"entry_id" validate:"gt=0"`
	EntryName    string  `json:"entry_name" validate:"required"`
	Entry        int     `json:"entry" validate:"gt=0"`
	TotalEntries int     `json:"total_entries" validate:"gtefield=Entry"`
	LineupRank   int     `json:"lineup_rank" validate:"gt=0"`
	Points       float64 `json:"points"`
	Lineup       string  `json:"lineup,omitempty"`
}

type PlayerResult struct {
	ContestID      int64   `json:"contest_id" validate:"gt=0"`
	Player         string  `json:"player" validate:"required"`
	RosterPosition string  `json:"roster_position" validate:"required"`
	PercentDrafted float64 `json:"percent_drafted" validate:"gte=0"`
	FPTS           float64 `json:"fpts"`
}

type HistoryEntry struct {
	EntryID           int64   `json:"entry_id" validate:"gt=0"`
	ContestID         int64   `json:"contest_id" validate:"gt=0"`
	Sport             string  `json:"sport"`
	GameType          string  `json:"game_type"`
	Entry             string  `json:"entry"`
	Opponent          string  `json:"opponent,omitempty"`
	ContestDateEST    string  `json:"contest_date_est"`
	LineupRank        int     `json:"lineup_rank"`
	Points            float64 `json:"points"`
	WinningsNonTicket float64 `json:"winnings_non_ticket" validate:"gte=0"`
	WinningsTicket    float64 `json:"winnings_ticket" validate:"gte=0"`
	ContestEntries    int     `json:"contest_entries" validate:"gte=0"`
	EntryFee          float64 `json:"entry_fee" validate:"gte=0"`
	PrizePool         float64 `json:"prize_pool" validate:"gte=0"`
	PlacesPaid        int     `json:"places_paid" validate:"gte=0"`
}

type FailedContest struct {
	ContestID int64
	Reason    string
}
