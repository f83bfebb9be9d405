package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/omarshaarawi/tradebot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func league(week int, fetched time.Time) *models.League {
	return &models.League{
		Name:      "Dad League",
		Week:      week,
		FetchedAt: fetched,
		Teams: []models.TeamRoster{
			{
				TeamID:   1,
				TeamName: "Coach Dad",
				IsMine:   true,
				Players: []models.RosterPlayer{
					{Name: "Zero", Position: "K", ProjectedPoints: models.Projection(0)},
					{Name: "Unknown", Position: "WR"},
				},
			},
		},
	}
}

func TestSaveAndLoad_KeepsUnknownProjections(t *testing.T) {
	s := NewJSONStore(t.TempDir())

	path, err := s.Save(league(3, time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "league-20240920T120000.000000000.json", filepath.Base(path))

	loaded, err := s.Load(path)
	require.NoError(t, err)

	players := loaded.Teams[0].Players
	require.NotNil(t, players[0].ProjectedPoints)
	assert.Zero(t, *players[0].ProjectedPoints)
	assert.Nil(t, players[1].ProjectedPoints)
	assert.True(t, loaded.Teams[0].IsMine)
}

func TestLatest_ByModTime(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir)

	older, err := s.Save(league(7, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	newer, err := s.Save(league(6, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, 6, latest.Week)
}

func TestLatest_Empty(t *testing.T) {
	_, err := NewJSONStore(filepath.Join(t.TempDir(), "missing")).Latest()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = NewJSONStore(t.TempDir()).Latest()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "league-bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := NewJSONStore(dir).Latest()
	assert.Error(t, err)
}
