// Package config supplies the listing defaults consumed by the directory
// provider: whether recordings are grouped into folders and whether
// disabled timers are hidden. Values come from an optional YAML file with
// environment overrides and can be reloaded while running.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/openpvr/pvrfs/internal/log"
)

// Environment override variables.
const (
	EnvGroupRecordings    = "PVRFS_GROUP_RECORDINGS"
	EnvHideDisabledTimers = "PVRFS_HIDE_DISABLED_TIMERS"
)

// Settings holds the listing defaults.
type Settings struct {
	GroupRecordings    bool `yaml:"group_recordings"`
	HideDisabledTimers bool `yaml:"hide_disabled_timers"`
}

// Defaults returns the built-in settings used when no file and no
// environment overrides are present.
func Defaults() Settings {
	return Settings{
		GroupRecordings:    true,
		HideDisabledTimers: false,
	}
}

// Store is a reloadable settings provider. It implements the directory
// package's Settings interface.
type Store struct {
	mu      sync.RWMutex
	path    string
	current Settings
}

// Load builds a Store from the given YAML file path. An empty path or a
// missing file yields defaults; environment overrides always apply last.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the settings file and re-applies environment overrides.
func (s *Store) Reload() error {
	settings := Defaults()

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No file yet, that's fine.
		case err != nil:
			return fmt.Errorf("read settings file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return fmt.Errorf("parse settings file %s: %w", s.path, err)
			}
		}
	}

	applyEnv(&settings)

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	logger := log.WithComponent("config")
	logger.Debug().
		Bool("group_recordings", settings.GroupRecordings).
		Bool("hide_disabled_timers", settings.HideDisabledTimers).
		Msg("settings loaded")
	return nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv(EnvGroupRecordings); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.GroupRecordings = b
		}
	}
	if v := os.Getenv(EnvHideDisabledTimers); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.HideDisabledTimers = b
		}
	}
}

// Snapshot returns the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) GroupRecordings() bool {
	return s.Snapshot().GroupRecordings
}

func (s *Store) HideDisabledTimers() bool {
	return s.Snapshot().HideDisabledTimers
}
