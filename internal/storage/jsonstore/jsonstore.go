// Package jsonstore persists the bot's two state documents as
// human-readable JSON files. There are no transactions: each save
// rewrites the whole document and the last writer wins.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

type Store struct {
	configPath string
	rosterPath string
}

func New(configPath, rosterPath string) *Store {
	return &Store{
		configPath: configPath,
		rosterPath: rosterPath,
	}
}

// LoadConfig reads the config document. A missing or unreadable file
// is replaced with defaults, which are written back immediately.
func (s *Store) LoadConfig() (*entity.BotConfig, error) {
	cfg := &entity.BotConfig{}
	ok, err := s.load(s.configPath, cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		cfg = entity.DefaultBotConfig()
		if err := s.SaveConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to bootstrap config document: %w", err)
		}
	}
	return cfg, nil
}

func (s *Store) SaveConfig(cfg *entity.BotConfig) error {
	return s.save(s.configPath, cfg)
}

// LoadRoster reads the roster document, bootstrapping an empty roster
// when the file does not exist yet.
func (s *Store) LoadRoster() (*entity.RosterState, error) {
	roster := &entity.RosterState{}
	ok, err := s.load(s.rosterPath, roster)
	if err != nil {
		return nil, err
	}
	if !ok {
		roster = entity.DefaultRosterState()
		if err := s.SaveRoster(roster); err != nil {
			return nil, fmt.Errorf("failed to bootstrap roster document: %w", err)
		}
	}
	return roster, nil
}

func (s *Store) SaveRoster(roster *entity.RosterState) error {
	return s.save(s.rosterPath, roster)
}

// load reports ok=false when the document is absent or corrupt, so the
// caller can fall back to defaults. Only I/O errors other than
// not-exist are returned.
func (s *Store) load(path string, v any) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Info("document not found, using defaults")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("document unreadable, replacing with defaults")
		return false, nil
	}
	return true, nil
}

func (s *Store) save(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
