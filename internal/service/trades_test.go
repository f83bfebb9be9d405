package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/omarshaarawi/tradebot/internal/models"
	"github.com/omarshaarawi/tradebot/internal/repository/memory"
	"github.com/omarshaarawi/tradebot/internal/store"
	"github.com/omarshaarawi/tradebot/internal/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	league        *models.League
	err           error
	snapshotCalls int
}

func (f *fakeAPI) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LeagueMetadata{CurrentWeek: 5, LastUpdated: time.Now()}, nil
}

func (f *fakeAPI) GetSnapshot(week int) (*models.League, error) {
	f.snapshotCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.league, nil
}

type fakeStore struct {
	saved  []*models.League
	latest *models.League
}

func (f *fakeStore) Save(league *models.League) (string, error) {
	f.saved = append(f.saved, league)
	return "league-test.json", nil
}

func (f *fakeStore) Latest() (*models.League, error) {
	if f.latest == nil {
		return nil, store.ErrNoSnapshot
	}
	return f.latest, nil
}

func p(name, position string, points float64) models.RosterPlayer {
	return models.RosterPlayer{Name: name, Position: position, LineupSlot: "Bench", ProjectedPoints: models.Projection(points)}
}

func snapshot() *models.League {
	return &models.League{
		Name:      "Dad League",
		Week:      5,
		FetchedAt: time.Now(),
		Teams: []models.TeamRoster{
			{
				TeamID: 1, TeamName: "Coach Dad", Rank: 2, Wins: 2, Losses: 2, Streak: "L1",
				Players: []models.RosterPlayer{
					p("Dad QB", "QB", 20),
					p("Dad WR1", "WR", 18),
					p("Dad WR2", "WR", 16),
					p("Dad RB1", "RB", 14),
					p("Dad RB2", "RB", 13),
					p("Dad TE", "TE", 8),
					p("Dad WR3", "WR", 5),
					{Name: "Dad Hurt", Position: "RB", LineupSlot: "IR", InjuryStatus: "OUT"},
				},
			},
			{
				TeamID: 2, TeamName: "Stairway to Evans", Rank: 1, Wins: 3, Losses: 1, Streak: "W2",
				IsMine: true,
				Players: []models.RosterPlayer{
					p("Evans QB", "QB", 10),
					p("Evans WR", "WR", 12),
				},
			},
		},
	}
}

func newService(api LeagueAPI, st SnapshotStore, offline bool) *TradeService {
	return NewTradeService(api, st, memory.NewRepository(), trade.NewEvaluator(trade.WithWorkers(2)), Options{
		MyTeam:  "Coach Dad",
		Limit:   3,
		TTL:     time.Hour,
		Offline: offline,
	})
}

func TestLeague_FetchMarksMineAndSaves(t *testing.T) {
	api := &fakeAPI{league: snapshot()}
	st := &fakeStore{}
	svc := newService(api, st, false)

	league, err := svc.League()
	require.NoError(t, err)

	mine, err := league.MyTeam()
	require.NoError(t, err)
	assert.Equal(t, "Coach Dad", mine.TeamName)
	assert.Len(t, st.saved, 1)

	_, err = svc.League()
	require.NoError(t, err)
	assert.Equal(t, 1, api.snapshotCalls, "second call should hit the cache")
}

func TestLeague_FallsBackToStore(t *testing.T) {
	api := &fakeAPI{err: errors.New("espn down")}
	st := &fakeStore{latest: snapshot()}

	league, err := newService(api, st, false).League()
	require.NoError(t, err)
	assert.Equal(t, 5, league.Week)
}

func TestLeague_NoSourceAvailable(t *testing.T) {
	api := &fakeAPI{err: errors.New("espn down")}

	_, err := newService(api, &fakeStore{}, false).League()
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
	assert.ErrorContains(t, err, "espn down")
}

func TestLeague_Offline(t *testing.T) {
	st := &fakeStore{latest: snapshot()}

	league, err := newService(nil, st, true).League()
	require.NoError(t, err)
	assert.Equal(t, "Dad League", league.Name)
}

func TestLeague_UnknownMyTeam(t *testing.T) {
	svc := NewTradeService(nil, &fakeStore{latest: snapshot()}, memory.NewRepository(), trade.NewEvaluator(), Options{
		MyTeam:  "Nobody Here At All",
		Offline: true,
	})

	_, err := svc.SuggestTrades()
	assert.ErrorIs(t, err, models.ErrNoMyTeam)
}

func TestSuggestTrades(t *testing.T) {
	report, err := newService(nil, &fakeStore{latest: snapshot()}, true).SuggestTrades()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(report), "\n")
	assert.Equal(t, "🔁 *Week 5 Trade Suggestions*", lines[0])
	assert.Equal(t, "Coach Dad (projected 94.00)", lines[1])

	var trades []string
	for _, line := range lines[2:] {
		if line != "" {
			trades = append(trades, line)
		}
	}
	assert.LessOrEqual(t, len(trades), 3)
	assert.NotEmpty(t, trades)
	assert.True(t, strings.HasPrefix(trades[0], "1. "))
	assert.NotContains(t, report, "Dad Hurt")
}

func TestSuggestTrades_NoneFound(t *testing.T) {
	league := &models.League{
		Week: 2,
		Teams: []models.TeamRoster{
			{TeamName: "Coach Dad", Players: []models.RosterPlayer{p("QB", "QB", 10)}},
			{TeamName: "Other", Players: []models.RosterPlayer{p("QB2", "QB", 10)}},
		},
	}

	report, err := newService(nil, &fakeStore{latest: league}, true).SuggestTrades()
	require.NoError(t, err)
	assert.Contains(t, report, "No beneficial trades found.")
}

func TestGetLineup(t *testing.T) {
	svc := newService(nil, &fakeStore{latest: snapshot()}, true)

	report, err := svc.GetLineup("")
	require.NoError(t, err)
	assert.Contains(t, report, "Coach Dad's Best Lineup")
	assert.Contains(t, report, "▫️ FLEX Dad WR3 - 5.00 pts")
	assert.Contains(t, report, "Projected: 94.00")

	report, err = svc.GetLineup("stairway")
	require.Error(t, err)
	assert.Empty(t, report)

	report, err = svc.GetLineup("Stairway to Evan")
	require.NoError(t, err)
	assert.Contains(t, report, "▫️ RB (empty)")
	assert.Contains(t, report, "Projected: 22.00")
}

func TestGetTeamRoster(t *testing.T) {
	report, err := newService(nil, &fakeStore{latest: snapshot()}, true).GetTeamRoster("Coach Dad")
	require.NoError(t, err)

	assert.Contains(t, report, "▫️ Bench QB Dad QB - 20.00 pts")
	assert.Contains(t, report, "▫️ IR RB Dad Hurt (O) - -")
}

func TestGetStandings(t *testing.T) {
	report, err := newService(nil, &fakeStore{latest: snapshot()}, true).GetStandings()
	require.NoError(t, err)

	evans := strings.Index(report, "1. *Stairway to Evans*")
	dad := strings.Index(report, "2. *Coach Dad* ⭐")
	require.NotEqual(t, -1, evans)
	require.NotEqual(t, -1, dad)
	assert.Less(t, evans, dad)
	assert.Contains(t, report, "Record: 3-1-0 (W2)")
}
