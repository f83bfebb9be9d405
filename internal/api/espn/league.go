package espn

import (
	"fmt"
	"sort"
	"time"

	"github.com/omarshaarawi/tradebot/internal/models"
)

const statSourceProjected = 1

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint() string {
	return fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(a.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	metadata := &models.LeagueMetadata{
		LeagueID:             espnResponse.ID,
		Name:                 espnResponse.Settings.Name,
		CurrentWeek:          espnResponse.Status.CurrentMatchupPeriod,
		CurrentScoringPeriod: espnResponse.ScoringPeriodID,
		SeasonID:             espnResponse.SeasonID,
		FirstWeek:            espnResponse.Status.FirstScoringPeriod,
		LastWeek:             espnResponse.Status.FinalScoringPeriod,
		IsActive:             espnResponse.Status.IsActive,
		LastUpdated:          time.Now(),
	}

	return metadata, nil
}

func buildStandings(teams []models.Team) []models.TeamStanding {
	standings := make([]models.TeamStanding, len(teams))
	for i, team := range teams {
		standings[i] = models.TeamStanding{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			Abbreviation:  team.Abbreviation,
			Wins:          team.Record.Overall.Wins,
			Losses:        team.Record.Overall.Losses,
			Ties:          team.Record.Overall.Ties,
			PointsFor:     team.Record.Overall.PointsFor,
			PointsAgainst: team.Record.Overall.PointsAgainst,
			WinPercentage: team.Record.Overall.Percentage,
			PlayoffSeed:   team.PlayoffSeed,
			Streak:        streakString(team.Record.Overall),
			WaiverRank:    team.WaiverRank,
			Moves:         team.TransactionCounter.Acquisitions,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}

func streakString(record models.RecordDetails) string {
	if record.StreakLength == 0 || record.StreakType == "" {
		return "-"
	}
	return fmt.Sprintf("%s%d", record.StreakType[:1], record.StreakLength)
}

// GetSnapshot loads every roster with projections for week. Players without a
// projection for that scoring period keep a nil ProjectedPoints.
func (a *API) GetSnapshot(week int) (*models.League, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view":            "mSettings,mTeam,mRoster",
		"scoringPeriodId": fmt.Sprintf("%d", week),
	}

	if err := a.client.Get(a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}

	byeWeeks, err := a.GetProSchedule()
	if err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	return buildLeague(leagueResponse, week, byeWeeks), nil
}

func buildLeague(resp models.LeagueResponse, week int, byeWeeks map[int]int) *models.League {
	ranks := make(map[int]models.TeamStanding, len(resp.Teams))
	for _, s := range buildStandings(resp.Teams) {
		ranks[s.TeamID] = s
	}

	league := &models.League{
		ID:        resp.ID,
		Name:      resp.Settings.Name,
		SeasonID:  resp.SeasonID,
		Week:      week,
		FetchedAt: time.Now(),
		Teams:     make([]models.TeamRoster, 0, len(resp.Teams)),
	}

	for _, team := range resp.Teams {
		standing := ranks[team.ID]
		roster := models.TeamRoster{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			Abbreviation:  team.Abbreviation,
			Rank:          standing.Rank,
			Wins:          standing.Wins,
			Losses:        standing.Losses,
			Ties:          standing.Ties,
			PointsFor:     standing.PointsFor,
			PointsAgainst: standing.PointsAgainst,
			Streak:        standing.Streak,
			WaiverRank:    standing.WaiverRank,
			Moves:         standing.Moves,
			Players:       make([]models.RosterPlayer, 0, len(team.Roster.Entries)),
		}

		for _, entry := range team.Roster.Entries {
			player := entry.PlayerPoolEntry.Player
			roster.Players = append(roster.Players, models.RosterPlayer{
				ID:              player.ID,
				Name:            player.FullName,
				Position:        getPositionString(player.DefaultPositionID),
				LineupSlot:      getLineupSlotString(entry.LineupSlotID),
				ProjectedPoints: getProjectedPoints(player, week),
				StartPct:        player.Ownership.PercentStarted,
				ByeWeek:         byeWeeks[player.ProTeamID],
				ProTeam:         getProTeamString(player.ProTeamID),
				InjuryStatus:    player.InjuryStatus,
			})
		}

		league.Teams = append(league.Teams, roster)
	}

	return league
}

func getProjectedPoints(player models.Player, week int) *float64 {
	for _, stat := range player.Stats {
		if stat.ScoringPeriodID == week && stat.StatSourceID == statSourceProjected {
			return models.Projection(stat.AppliedTotal)
		}
	}
	return nil
}

func getPositionString(positionID int) string {
	positions := map[int]string{
		1: "QB", 2: "RB", 3: "WR", 4: "TE", 5: "K", 16: "D/ST",
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

func getProTeamString(proTeamID int) string {
	teams := map[int]string{
		1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
		9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
		17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
		25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
	}

	if team, ok := teams[proTeamID]; ok {
		return team
	}

	return "FA"
}

func getLineupSlotString(slotID int) string {
	switch slotID {
	case 0:
		return "QB"
	case 2:
		return "RB"
	case 4:
		return "WR"
	case 6:
		return "TE"
	case 16:
		return "D/ST"
	case 17:
		return "K"
	case 20:
		return "Bench"
	case 21:
		return "IR"
	case 23:
		return "FLEX"
	default:
		return "Unknown"
	}
}

// GetProSchedule maps pro team ID to bye week.
func (a *API) GetProSchedule() (map[int]int, error) {
	var scheduleResponse models.ProScheduleResponse

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}

	if err := a.client.Get(endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	byeWeeks := make(map[int]int)
	for _, team := range scheduleResponse.Settings.ProTeams {
		if team.ByeWeek > 0 {
			byeWeeks[team.ID] = team.ByeWeek
		}
	}

	return byeWeeks, nil
}
