package memory

import (
	"sync"
	"testing"

	"github.com/omarshaarawi/tradebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRepository(t *testing.T) {
	repo := NewRepository()
	assert.Nil(t, repo.GetMetadata())
	assert.Nil(t, repo.GetLeague())

	repo.SaveMetadata(&models.LeagueMetadata{CurrentWeek: 3})
	repo.SaveLeague(&models.League{Week: 3})

	assert.Equal(t, 3, repo.GetMetadata().CurrentWeek)
	assert.Equal(t, 3, repo.GetLeague().Week)
}

func TestRepository_Concurrent(t *testing.T) {
	repo := NewRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.SaveLeague(&models.League{Week: i})
		}()
		go func() {
			defer wg.Done()
			_ = repo.GetLeague()
		}()
	}
	wg.Wait()

	assert.NotNil(t, repo.GetLeague())
}
