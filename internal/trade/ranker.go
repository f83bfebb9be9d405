package trade

import (
	"sort"

	"github.com/omarshaarawi/tradebot/internal/models"
)

const DefaultLimit = 10

// Rank orders candidates by combined improvement, best first, and keeps at
// most limit of them. Equal improvements keep generation order. A limit of
// zero or less means DefaultLimit. The input slice is left untouched.
func Rank(candidates []models.TradeCandidate, limit int) []models.TradeCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]models.TradeCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedImprovement > ranked[j].CombinedImprovement
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
