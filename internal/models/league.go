package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrNoMyTeam        = errors.New("no team is marked as mine")
	ErrMultipleMyTeams = errors.New("more than one team is marked as mine")
	ErrTeamNotFound    = errors.New("team not found")
)

const (
	myTeamThreshold   = 0.7
	findTeamThreshold = 0.6
)

// MyTeam returns the single team flagged as mine.
func (l *League) MyTeam() (*TeamRoster, error) {
	var mine *TeamRoster
	for i := range l.Teams {
		if !l.Teams[i].IsMine {
			continue
		}
		if mine != nil {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultipleMyTeams, mine.TeamName, l.Teams[i].TeamName)
		}
		mine = &l.Teams[i]
	}
	if mine == nil {
		return nil, ErrNoMyTeam
	}
	return mine, nil
}

// MarkMine flags the team matching identifier as mine and clears the flag on
// every other team. The identifier is tried as a team ID, then as an exact
// case-insensitive name, then as a fuzzy name.
func (l *League) MarkMine(identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return fmt.Errorf("%w: empty identifier", ErrNoMyTeam)
	}

	idx := -1
	if id, err := strconv.Atoi(identifier); err == nil {
		for i, team := range l.Teams {
			if team.TeamID == id {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		for i, team := range l.Teams {
			if strings.EqualFold(team.TeamName, identifier) {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		idx = l.bestMatch(identifier, myTeamThreshold)
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNoMyTeam, identifier)
	}

	for i := range l.Teams {
		l.Teams[i].IsMine = i == idx
	}
	return nil
}

// FindTeam looks a team up by approximate name.
func (l *League) FindTeam(name string) (*TeamRoster, error) {
	idx := l.bestMatch(name, findTeamThreshold)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
	}
	return &l.Teams[idx], nil
}

func (l *League) bestMatch(name string, threshold float64) int {
	best := -1
	bestScore := threshold
	target := strings.ToLower(name)

	for i, team := range l.Teams {
		current := strings.ToLower(team.TeamName)
		maxLen := max(len(target), len(current))
		if maxLen == 0 {
			continue
		}
		distance := fuzzy.LevenshteinDistance(target, current)
		similarity := 1 - float64(distance)/float64(maxLen)

		if similarity > bestScore {
			bestScore = similarity
			best = i
		}
	}
	return best
}
