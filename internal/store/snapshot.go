// Package store keeps league snapshots on disk as JSON so trades can be
// evaluated again without calling ESPN.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/omarshaarawi/tradebot/internal/models"
)

var ErrNoSnapshot = errors.New("no stored snapshot")

const (
	filePrefix = "league-"
	fileSuffix = ".json"
)

type JSONStore struct {
	Root string
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

// Save writes league to a new timestamped file and returns its path.
func (s *JSONStore) Save(league *models.League) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}

	body, err := json.MarshalIndent(league, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	stamp := league.FetchedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	name := filePrefix + stamp.UTC().Format("20060102T150405.000000000") + fileSuffix
	path := filepath.Join(s.Root, name)

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

// Latest loads the most recently modified snapshot.
func (s *JSONStore) Latest() (*models.League, error) {
	entries, err := os.ReadDir(s.Root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	var latest string
	var latestMod time.Time
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading snapshot info: %w", err)
		}
		// names carry the fetch time, so they break modtime ties
		if latest == "" || info.ModTime().After(latestMod) ||
			(info.ModTime().Equal(latestMod) && name > latest) {
			latest = name
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return nil, ErrNoSnapshot
	}

	return s.Load(filepath.Join(s.Root, latest))
}

func (s *JSONStore) Load(path string) (*models.League, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var league models.League
	if err := json.Unmarshal(body, &league); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", filepath.Base(path), err)
	}
	return &league, nil
}
