package models

import "time"

type LeagueMetadata struct {
	LeagueID             int
	Name                 string
	CurrentWeek          int
	CurrentScoringPeriod int
	SeasonID             int
	FirstWeek            int
	LastWeek             int
	IsActive             bool
	LastUpdated          time.Time
}

type TeamStanding struct {
	Rank          int
	TeamID        int
	TeamName      string
	Abbreviation  string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	WinPercentage float64
	PlayoffSeed   int
	Streak        string
	WaiverRank    int
	Moves         int
}

// League is a point-in-time snapshot of every roster in the league. It is
// treated as read-only once built.
type League struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	SeasonID  int          `json:"season_id"`
	Week      int          `json:"week"`
	FetchedAt time.Time    `json:"fetched_at"`
	Teams     []TeamRoster `json:"teams"`
}

type TeamRoster struct {
	TeamID        int            `json:"team_id"`
	TeamName      string         `json:"team_name"`
	Abbreviation  string         `json:"abbreviation"`
	Rank          int            `json:"rank"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Ties          int            `json:"ties"`
	PointsFor     float64        `json:"points_for"`
	PointsAgainst float64        `json:"points_against"`
	Streak        string         `json:"streak"`
	WaiverRank    int            `json:"waiver_rank"`
	Moves         int            `json:"moves"`
	IsMine        bool           `json:"is_mine"`
	Players       []RosterPlayer `json:"players"`
}

type RosterPlayer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	// LineupSlot is where the manager currently has the player (Bench, IR,
	// FLEX, ...). Lineup optimization ignores it.
	LineupSlot string `json:"lineup_slot"`
	// ProjectedPoints is nil when no projection exists for the week.
	ProjectedPoints *float64 `json:"projected_points"`
	StartPct        float64  `json:"start_pct"`
	ByeWeek         int      `json:"bye_week"`
	ProTeam         string   `json:"pro_team"`
	InjuryStatus    string   `json:"injury_status"`
}

// Scored reports whether the player has a projection and can therefore be
// started or traded.
func (p RosterPlayer) Scored() bool {
	return p.ProjectedPoints != nil
}

// Points returns the projection, or zero when unknown.
func (p RosterPlayer) Points() float64 {
	if p.ProjectedPoints == nil {
		return 0
	}
	return *p.ProjectedPoints
}

func Projection(points float64) *float64 {
	return &points
}
