package memory

import (
	"sync"

	"github.com/omarshaarawi/tradebot/internal/models"
)

type Repository struct {
	metadata *models.LeagueMetadata
	league   *models.League
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
}

func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata
}

func (r *Repository) SaveLeague(league *models.League) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.league = league
}

func (r *Repository) GetLeague() *models.League {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.league
}
