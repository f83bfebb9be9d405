package fantasy

import (
	"github.com/omarshaarawi/tradebot/internal/api/espn"
	"github.com/omarshaarawi/tradebot/internal/models"
)

type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	return a.espnAPI.GetLeagueMetadata()
}

func (a *API) GetSnapshot(week int) (*models.League, error) {
	return a.espnAPI.GetSnapshot(week)
}
