package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/omarshaarawi/tradebot/internal/lineup"
	"github.com/omarshaarawi/tradebot/internal/models"
	"github.com/omarshaarawi/tradebot/internal/repository/memory"
	"github.com/omarshaarawi/tradebot/internal/trade"
)

type LeagueAPI interface {
	GetLeagueMetadata() (*models.LeagueMetadata, error)
	GetSnapshot(week int) (*models.League, error)
}

type SnapshotStore interface {
	Save(league *models.League) (string, error)
	Latest() (*models.League, error)
}

type Options struct {
	MyTeam string
	Limit  int
	TTL    time.Duration
	// Offline skips the API and always reads the latest stored snapshot.
	Offline bool
}

type TradeService struct {
	api       LeagueAPI
	store     SnapshotStore
	repo      *memory.Repository
	evaluator *trade.Evaluator
	opts      Options
}

func NewTradeService(api LeagueAPI, store SnapshotStore, repo *memory.Repository, evaluator *trade.Evaluator, opts Options) *TradeService {
	return &TradeService{
		api:       api,
		store:     store,
		repo:      repo,
		evaluator: evaluator,
		opts:      opts,
	}
}

func (s *TradeService) GetCurrentWeek() (int, error) {
	metadata, err := s.getLeagueMetadata()
	if err != nil {
		return 0, err
	}

	slog.Info("Current week", "week", metadata.CurrentWeek)
	return metadata.CurrentWeek, nil
}

func (s *TradeService) getLeagueMetadata() (*models.LeagueMetadata, error) {
	metadata := s.repo.GetMetadata()
	if metadata == nil || time.Since(metadata.LastUpdated) > 24*time.Hour {
		newMetadata, err := s.api.GetLeagueMetadata()
		if err != nil {
			return nil, err
		}
		s.repo.SaveMetadata(newMetadata)
		return newMetadata, nil
	}
	return metadata, nil
}

// League returns the current snapshot with my team marked. Fresh snapshots
// are cached for the configured TTL and written to the store. When the API
// fails the latest stored snapshot is used instead.
func (s *TradeService) League() (*models.League, error) {
	if cached := s.repo.GetLeague(); cached != nil && time.Since(cached.FetchedAt) < s.opts.TTL {
		return cached, nil
	}

	league, err := s.loadLeague()
	if err != nil {
		return nil, err
	}

	if err := league.MarkMine(s.opts.MyTeam); err != nil {
		return nil, fmt.Errorf("resolving my team: %w", err)
	}

	s.repo.SaveLeague(league)
	return league, nil
}

func (s *TradeService) loadLeague() (*models.League, error) {
	if s.opts.Offline || s.api == nil {
		league, err := s.store.Latest()
		if err != nil {
			return nil, fmt.Errorf("loading stored snapshot: %w", err)
		}
		slog.Info("Loaded stored snapshot", "week", league.Week, "fetched_at", league.FetchedAt)
		return league, nil
	}

	league, err := s.fetchLeague()
	if err == nil {
		return league, nil
	}

	slog.Error("Error fetching league, falling back to stored snapshot", "error", err)
	stored, storeErr := s.store.Latest()
	if storeErr != nil {
		return nil, errors.Join(err, storeErr)
	}
	return stored, nil
}

func (s *TradeService) fetchLeague() (*models.League, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return nil, fmt.Errorf("error fetching current week: %w", err)
	}

	league, err := s.api.GetSnapshot(week)
	if err != nil {
		return nil, fmt.Errorf("error fetching snapshot: %w", err)
	}

	path, err := s.store.Save(league)
	if err != nil {
		slog.Error("Error saving snapshot", "error", err)
	} else {
		slog.Info("Saved snapshot", "path", path)
	}
	return league, nil
}

func (s *TradeService) SuggestTrades() (string, error) {
	league, err := s.League()
	if err != nil {
		return "", err
	}

	candidates, err := s.evaluator.Evaluate(league)
	if err != nil {
		return "", fmt.Errorf("error evaluating trades: %w", err)
	}
	ranked := trade.Rank(candidates, s.opts.Limit)
	slog.Info("Trades ranked", "candidates", len(candidates), "reported", len(ranked))

	myTeam, err := league.MyTeam()
	if err != nil {
		return "", err
	}

	return formatTrades(league, myTeam, ranked), nil
}

func formatTrades(league *models.League, myTeam *models.TeamRoster, ranked []models.TradeCandidate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔁 *Week %d Trade Suggestions*\n", league.Week))
	sb.WriteString(fmt.Sprintf("%s (projected %.2f)\n\n", myTeam.TeamName, lineup.Optimize(myTeam.Players).Total))

	if len(ranked) == 0 {
		sb.WriteString("No beneficial trades found.")
		return sb.String()
	}

	for i, c := range ranked {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.String()))
	}
	return sb.String()
}

// GetLineup shows the optimal lineup for teamName, or for my team when
// teamName is empty.
func (s *TradeService) GetLineup(teamName string) (string, error) {
	league, err := s.League()
	if err != nil {
		return "", err
	}

	team, err := s.lookupTeam(league, teamName)
	if err != nil {
		return "", err
	}

	result := lineup.Optimize(team.Players)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Best Lineup* (Week %d)\n\n", team.TeamName, league.Week))
	for _, label := range lineup.Standard.Labels() {
		players := result.Slots[label]
		if len(players) == 0 {
			sb.WriteString(fmt.Sprintf("▫️ %s (empty)\n", label))
			continue
		}
		for _, p := range players {
			sb.WriteString(fmt.Sprintf("▫️ %s %s - %.2f pts\n", label, p.Name, p.Points()))
		}
	}
	sb.WriteString(fmt.Sprintf("\nProjected: %.2f", result.Total))

	return sb.String(), nil
}

func (s *TradeService) GetTeamRoster(teamName string) (string, error) {
	league, err := s.League()
	if err != nil {
		return "", err
	}

	team, err := s.lookupTeam(league, teamName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Roster*\n\n", team.TeamName))

	for _, p := range team.Players {
		pointsStr := "-"
		if p.Scored() {
			pointsStr = fmt.Sprintf("%.2f pts", p.Points())
		}

		injuryStr := ""
		if abbr, ok := injuryAbbreviations[p.InjuryStatus]; ok {
			injuryStr = fmt.Sprintf(" (%s)", abbr)
		}

		sb.WriteString(fmt.Sprintf("▫️ %s %s %s%s - %s\n", p.LineupSlot, p.Position, p.Name, injuryStr, pointsStr))
	}

	return sb.String(), nil
}

var injuryAbbreviations = map[string]string{
	"QUESTIONABLE":   "Q",
	"DOUBTFUL":       "D",
	"OUT":            "O",
	"INJURY_RESERVE": "IR",
}

func (s *TradeService) GetStandings() (string, error) {
	league, err := s.League()
	if err != nil {
		return "", err
	}

	teams := make([]models.TeamRoster, len(league.Teams))
	copy(teams, league.Teams)
	sortByRank(teams)

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range teams {
		marker := ""
		if team.IsMine {
			marker = " ⭐"
		}
		sb.WriteString(fmt.Sprintf("%d. *%s*%s\n", team.Rank, team.TeamName, marker))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d (%s)\n", team.Wins, team.Losses, team.Ties, team.Streak))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n", team.PointsAgainst))
		sb.WriteString(fmt.Sprintf("   Waiver: %d, Moves: %d\n\n", team.WaiverRank, team.Moves))
	}

	return sb.String(), nil
}

func sortByRank(teams []models.TeamRoster) {
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Rank < teams[j].Rank
	})
}

func (s *TradeService) lookupTeam(league *models.League, teamName string) (*models.TeamRoster, error) {
	if strings.TrimSpace(teamName) == "" {
		return league.MyTeam()
	}
	return league.FindTeam(teamName)
}
