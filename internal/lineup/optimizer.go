// Package lineup picks the highest-scoring starting lineup from a roster.
//
// Allocation runs in two phases. Phase one ranks each position group by
// projected points and fills the fixed slots from the top. Phase two pools
// what is left of the FLEX-eligible groups, ranks the pool and fills FLEX.
// Sorting is stable, so players with equal projections keep roster order.
package lineup

import (
	"sort"

	"github.com/omarshaarawi/tradebot/internal/models"
)

type Lineup struct {
	Slots map[string][]models.RosterPlayer
	Total float64
}

// Optimize builds the best Standard lineup for players.
func Optimize(players []models.RosterPlayer) Lineup {
	return Standard.Optimize(players)
}

func (c Config) Optimize(players []models.RosterPlayer) Lineup {
	result := Lineup{Slots: make(map[string][]models.RosterPlayer, len(c.Fixed)+1)}
	for _, label := range c.Labels() {
		result.Slots[label] = []models.RosterPlayer{}
	}

	groups := c.groupByPosition(players)

	// phase 1
	used := make(map[string]int, len(groups))
	for _, slot := range c.Fixed {
		group := groups[slot.Position]
		n := min(slot.Count, len(group)-used[slot.Position])
		if n <= 0 {
			continue
		}
		start := used[slot.Position]
		result.Slots[slot.Position] = append(result.Slots[slot.Position], group[start:start+n]...)
		used[slot.Position] += n
	}

	// phase 2
	if c.Flex.Count > 0 {
		var pool []models.RosterPlayer
		for _, position := range c.Flex.Positions {
			pool = append(pool, groups[position][used[position]:]...)
		}
		sortByProjection(pool)
		n := min(c.Flex.Count, len(pool))
		result.Slots[c.Flex.Label] = append(result.Slots[c.Flex.Label], pool[:n]...)
	}

	for _, label := range c.Labels() {
		for _, p := range result.Slots[label] {
			result.Total += p.Points()
		}
	}
	return result
}

// Starters returns every assigned player in slot order.
func (l Lineup) Starters(c Config) []models.RosterPlayer {
	var starters []models.RosterPlayer
	for _, label := range c.Labels() {
		starters = append(starters, l.Slots[label]...)
	}
	return starters
}

func (c Config) groupByPosition(players []models.RosterPlayer) map[string][]models.RosterPlayer {
	groups := make(map[string][]models.RosterPlayer)
	for _, p := range players {
		if !p.Scored() || !c.recognizes(p.Position) {
			continue
		}
		groups[p.Position] = append(groups[p.Position], p)
	}
	for position := range groups {
		sortByProjection(groups[position])
	}
	return groups
}

func sortByProjection(players []models.RosterPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return *players[i].ProjectedPoints > *players[j].ProjectedPoints
	})
}
