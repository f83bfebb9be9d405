package models

type LeagueResponse struct {
	ID              int      `json:"id"`
	ScoringPeriodID int      `json:"scoringPeriodId"`
	SeasonID        int      `json:"seasonId"`
	Status          Status   `json:"status"`
	Teams           []Team   `json:"teams"`
	Settings        Settings `json:"settings"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type Team struct {
	ID                 int                `json:"id"`
	Abbreviation       string             `json:"abbrev"`
	Name               string             `json:"name"`
	Location           string             `json:"location"`
	Nickname           string             `json:"nickname"`
	PlayoffSeed        int                `json:"playoffSeed"`
	WaiverRank         int                `json:"waiverRank"`
	Points             float64            `json:"points"`
	Roster             Roster             `json:"roster"`
	Record             Record             `json:"record"`
	TransactionCounter TransactionCounter `json:"transactionCounter"`
}

// DisplayName prefers the single name field and falls back to location plus
// nickname, which is what older seasons return.
func (t Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Location == "" {
		return t.Nickname
	}
	if t.Nickname == "" {
		return t.Location
	}
	return t.Location + " " + t.Nickname
}

type TransactionCounter struct {
	Acquisitions int `json:"acquisitions"`
	Drops        int `json:"drops"`
	Trades       int `json:"trades"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	StreakLength  int     `json:"streakLength"`
	StreakType    string  `json:"streakType"`
}

type RosterEntry struct {
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
	LineupSlotID    int             `json:"lineupSlotId"`
}

type PlayerPoolEntry struct {
	ID               int     `json:"id"`
	OnTeamID         int     `json:"onTeamId"`
	Player           Player  `json:"player"`
	AppliedStatTotal float64 `json:"appliedStatTotal"`
}

type Player struct {
	ID                int       `json:"id"`
	FullName          string    `json:"fullName"`
	DefaultPositionID int       `json:"defaultPositionId"`
	ProTeamID         int       `json:"proTeamId"`
	Ownership         Ownership `json:"ownership"`
	Stats             []Stat    `json:"stats"`
	InjuryStatus      string    `json:"injuryStatus"`
}

type Ownership struct {
	PercentOwned   float64 `json:"percentOwned"`
	PercentStarted float64 `json:"percentStarted"`
}

type Stat struct {
	StatSourceID    int                `json:"statSourceId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}

type ProTeamInfo struct {
	ID      int    `json:"id"`
	Abbrev  string `json:"abbrev"`
	ByeWeek int    `json:"byeWeek"`
	Name    string `json:"name"`
}

type ProScheduleResponse struct {
	Settings struct {
		ProTeams []ProTeamInfo `json:"proTeams"`
	} `json:"settings"`
}
