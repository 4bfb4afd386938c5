package draftkings

import (
	"context"
	"encoding/json"
	"fmt"
)

// Lobby is a one-shot snapshot of the getcontests response. It is
// fetched at most once per pipeline run and shared read-only between
// the contest, draft group, game type and game set scrapers.
type Lobby struct {
	Sport       string
	Contests    []RawContest    `json:"Contests"`
	DraftGroups []RawDraftGroup `json:"DraftGroups"`
	GameTypes   []RawGameType   `json:"GameTypes"`
	GameSets    []RawGameSet    `json:"GameSets"`
}

type RawContest struct {
	ID                int64             `json:"id"`
	Name              string            `json:"n"`
	EntryFee          float64           `json:"a"`
	CrownAmount       int64             `json:"crownAmount"`
	MaxEntries        int64             `json:"m"`
	MaxEntriesPerUser int64             `json:"mec"`
	DraftGroupID      int64             `json:"dg"`
	PrizeDescription  json.RawMessage   `json:"pd"`
	PrizePool         float64           `json:"po"`
	Attributes        map[string]string `json:"attr"`
	StartDateString   string            `json:"sdstring"`
}

type RawDraftGroup struct {
	DraftGroupID           int64           `json:"DraftGroupId"`
	AllowUGC               bool            `json:"AllowUGC"`
	ContestStartTimeSuffix string          `json:"ContestStartTimeSuffix"`
	ContestStartTimeType   int             `json:"ContestStartTimeType"`
	ContestTypeID          int64           `json:"ContestTypeId"`
	DraftGroupSeriesID     int64           `json:"DraftGroupSeriesId"`
	DraftGroupTag          string          `json:"DraftGroupTag"`
	GameCount              int             `json:"GameCount"`
	GameSetKey             string          `json:"GameSetKey"`
	GameType               string          `json:"GameType"`
	GameTypeID             int64           `json:"GameTypeId"`
	Games                  json.RawMessage `json:"Games"`
	SortOrder              int             `json:"SortOrder"`
	Sport                  string          `json:"Sport"`
	StartDate              string          `json:"StartDate"`
	StartDateEst           string          `json:"StartDateEst"`
}

type RawGameType struct {
	GameTypeID  int64           `json:"GameTypeId"`
	Name        string          `json:"Name"`
	Description string          `json:"Description"`
	Tag         string          `json:"Tag"`
	SportID     int64           `json:"SportId"`
	DraftType   string          `json:"DraftType"`
	GameStyle   json.RawMessage `json:"GameStyle"`
}

type RawGameSet struct {
	GameSetKey             string           `json:"GameSetKey"`
	ContestStartTimeSuffix string           `json:"ContestStartTimeSuffix"`
	Tag                    string           `json:"Tag"`
	Competitions           []RawCompetition `json:"Competitions"`
	GameStyles             []RawGameStyle   `json:"GameStyles"`
	SortOrder              int              `json:"SortOrder"`
	MinStartTime           string           `json:"MinStartTime"`
}

type RawCompetition struct {
	GameID        int64  `json:"GameId"`
	AwayTeamID    int64  `json:"AwayTeamId"`
	HomeTeamID    int64  `json:"HomeTeamId"`
	AwayTeamScore int    `json:"AwayTeamScore"`
	HomeTeamScore int    `json:"HomeTeamScore"`
	AwayTeamCity  string `json:"AwayTeamCity"`
	HomeTeamCity  string `json:"HomeTeamCity"`
	AwayTeamName  string `json:"AwayTeamName"`
	HomeTeamName  string `json:"HomeTeamName"`
	StartDate     string `json:"StartDate"`
	Location      string `json:"Location"`
	Sport         string `json:"Sport"`
	Status        string `json:"Status"`
	Description   string `json:"Description"`
}

type RawGameStyle struct {
	GameStyleID  int64  `json:"GameStyleId"`
	SportID      int64  `json:"SportId"`
	SortOrder    int    `json:"SortOrder"`
	Name         string `json:"Name"`
	Abbreviation string `json:"Abbreviation"`
	Description  string `json:"Description"`
	IsEnabled    bool   `json:"IsEnabled"`
}

// FetchLobby grabs the lobby payload for a sport. The returned snapshot
// is never mutated after decode.
func (c *Client) FetchLobby(ctx context.Context, sport string) (*Lobby, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf(LobbyURL, sport))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch lobby for %s: status %d", sport, res.StatusCode())
	}

	lobby := &Lobby{Sport: sport}
	err = json.Unmarshal(res.Body(), lobby)
	if err != nil {
		return nil, fmt.Errorf("decode lobby for %s: %w", sport, err)
	}
	return lobby, nil
}

// ParseLobby decodes a lobby payload without touching the network,
// used by fixture-driven callers.
func ParseLobby(sport string, payload []byte) (*Lobby, error) {
	lobby := &Lobby{Sport: sport}
	err := json.Unmarshal(payload, lobby)
	if err != nil {
		return nil, err
	}
	return lobby, nil
}
