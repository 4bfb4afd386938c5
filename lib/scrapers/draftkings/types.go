package draftkings

import "time"

// Validated records. Every entity is keyed by a site-assigned ID and
// only ever references other entities through those IDs.

type Contest struct {
	ContestID      int64   `json:"contest_id" validate:"gt=0"`
	Name           string  `json:"contest_name"`
	EntryFee       float64 `json:"entry_fee" validate:"gte=0"`
	CrownAmount    int64   `json:"crown_amount" validate:"gte=0"`
	MaxEntries     int64   `json:"max_entries" validate:"gte=0"`
	EntriesPerUser int64   `json:"entries_per_user" validate:"gte=0"`
	DraftGroupID   int64   `json:"draft_group_id" validate:"gt=0"`

	// serialized JSON preserved verbatim from the lobby payload
	PrizeDescription string `json:"pd,omitempty"`
	Attributes       string `json:"attr,omitempty"`

	PrizePool   float64 `json:"po" validate:"gte=0"`
	ContestDate string  `json:"contest_date"`
	ContestURL  string  `json:"contest_url" validate:"omitempty,url"`

	Guaranteed bool `json:"guaranteed"`
	Starred    bool `json:"starred"`
	DoubleUp   bool `json:"double_up"`
	FiftyFifty bool `json:"fifty_fifty"`
	League     bool `json:"league"`
	Multiplier bool `json:"multiplier"`
	Qualifier  bool `json:"qualifier"`

	IsFinal     bool      `json:"is_final"`
	IsCancelled bool      `json:"is_cancelled"`
	StartTime   time.Time `json:"start_time,omitempty"`
	Downloaded  bool      `json:"is_downloaded"`
}

// ContestDetail is the subset of the per-contest API response the
// pipeline derives status updates from.
type ContestDetail struct {
	ContestID   int64     `json:"contest_id" validate:"gt=0"`
	Name        string    `json:"contest_name,omitempty"`
	MaxEntries  int64     `json:"max_entries,omitempty"`
	IsFinal     bool      `json:"is_final"`
	IsCancelled bool      `json:"is_cancelled"`
	StartTime   time.Time `json:"start_time"`
}

type DraftGroup struct {
	DraftGroupID           int64  `json:"draft_group_id" validate:"gt=0"`
	AllowUGC               bool   `json:"allow_ugc"`
	ContestStartTimeSuffix string `json:"contest_start_time_suffix,omitempty"`
	ContestStartTimeType   int    `json:"contest_start_time_type"`
	ContestTypeID          int64  `json:"contest_type_id"`
	DraftGroupSeriesID     int64  `json:"draft_group_series_id"`
	DraftGroupTag          string `json:"draft_group_tag,omitempty"`
	GameCount              int    `json:"game_count" validate:"gte=0"`
	GameSetKey             string `json:"game_set_key"`
	GameType               string `json:"game_type"`
	GameTypeID             int64  `json:"game_type_id" validate:"gt=0"`
	Games                  string `json:"games,omitempty"`
	SortOrder              int    `json:"sort_order"`
	Sport                  string `json:"sport" validate:"required"`
	StartDate              string `json:"start_date"`
	StartDateEst           string `json:"start_date_est"`
}

type GameType struct {
	GameTypeID  int64  `json:"game_type_id" validate:"gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	SportID     int64  `json:"sport_id" validate:"gt=0"`
	DraftType   string `json:"draft_type"`
	// serialized JSON
	GameStyle string `json:"game_style,omitempty"`
}

type Competition struct {
	GameID        int64  `json:"game_id" validate:"gt=0"`
	AwayTeamID    int64  `json:"away_team_id"`
	HomeTeamID    int64  `json:"home_team_id"`
	AwayTeamScore int    `json:"away_team_score"`
	HomeTeamScore int    `json:"home_team_score"`
	AwayTeamCity  string `json:"away_team_city"`
	HomeTeamCity  string `json:"home_team_city"`
	AwayTeamName  string `json:"away_team_name"`
	HomeTeamName  string `json:"home_team_name"`
	StartDate     string `json:"start_date"`
	Location      string `json:"location"`
	Sport         string `json:"sport"`
	Status        string `json:"status"`
	Description   string `json:"description"`
}

type GameStyle struct {
	GameStyleID  int64  `json:"game_style_id" validate:"gt=0"`
	SportID      int64  `json:"sport_id"`
	SortOrder    int    `json:"sort_order"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description"`
	IsEnabled    bool   `json:"is_enabled"`
}

type GameSet struct {
	GameSetKey             string        `json:"game_set_key" validate:"required"`
	ContestStartTimeSuffix string        `json:"contest_start_time_suffix,omitempty"`
	Tag                    string        `json:"tag,omitempty"`
	Competitions           []Competition `json:"competitions" validate:"dive"`
	GameStyles             []GameStyle   `json:"game_styles" validate:"dive"`
	SortOrder              int           `json:"sort_order"`
	MinStartTime           string        `json:"min_start_time"`
}

// Payout is one flattened tier of a contest's payout schedule, keyed
// by (contest, min position, max position).
type Payout struct {
	ContestID   int64 `json:"contest_id" validate:"gt=0"`
	MinPosition int   `json:"min_position" validate:"gt=0"`
	MaxPosition int   `json:"max_position" validate:"gtefield=MinPosition"`

	// raw tierPayoutDescriptions map, serialized
	OriginalTier string `json:"original_tier,omitempty"`

	PayoutOneType  string  `json:"payout_one_type,omitempty"`
	PayoutOneValue float64 `json:"payout_one_value" validate:"gte=0"`
	PayoutTwoType  string  `json:"payout_two_type,omitempty"`
	PayoutTwoValue float64 `json:"payout_two_value" validate:"gte=0"`
}

type PlayerSalary struct {
	DraftGroupID     int64   `json:"draft_group_id" validate:"gt=0"`
	PlayerID         int64   `json:"id" validate:"gt=0"`
	Position         string  `json:"position"`
	NameID           string  `json:"name_id"`
	Name             string  `json:"name" validate:"required"`
	RosterPosition   string  `json:"roster_position"`
	Salary           float64 `json:"salary" validate:"gte=0"`
	GameInfo         string  `json:"game_info"`
	TeamAbbrev       string  `json:"team_abbrev"`
	AvgPointsPerGame float64 `json:"avg_points_per_game"`
}

type Sport struct {
	SportID                    int64  `json:"sport_id" validate:"gt=0"`
	FullName                   string `json:"full_name" validate:"required"`
	SortOrder                  int    `json:"sort_order"`
	HasPublicContests          bool   `json:"has_public_contests"`
	IsEnabled                  bool   `json:"is_enabled"`
	RegionFullSportName        string `json:"region_full_sport_name"`
	RegionAbbreviatedSportName string `json:"region_abbreviated_sport_name"`
}
