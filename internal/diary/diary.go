// Package diary persists workout entries and user settings as two JSON
// documents in a key-value Provider.
//
// Every operation rewrites the whole document. Storage failures never reach
// the caller: they are logged and the operation degrades to an empty list,
// empty settings or a skipped write.
package diary

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/logger"
	"github.com/julianstephens/sportlog/internal/models"
	"github.com/julianstephens/sportlog/internal/storage"
)

type Store struct {
	provider storage.Provider
	now      func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now as the source of new entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider returns the underlying key-value provider.
func (s *Store) Provider() storage.Provider {
	return s.provider
}

// readEntries distinguishes a missing document (empty list, nil error) from
// one that could not be read or parsed.
func (s *Store) readEntries() ([]models.Entry, error) {
	raw, err := s.provider.Get(constants.EntriesKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Entry{}, nil
		}
		return nil, err
	}

	var entries []models.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse entries: %w", err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

func (s *Store) writeEntries(entries []models.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	return s.provider.Set(constants.EntriesKey, string(data))
}

// GetEntries returns all entries oldest first, or an empty list when nothing
// is stored or the document cannot be read.
func (s *Store) GetEntries() []models.Entry {
	entries, err := s.readEntries()
	if err != nil {
		logger.Warn("Failed to read entries", "error", err)
		return []models.Entry{}
	}
	return entries
}

// FindEntry returns the first entry with the given timestamp.
func (s *Store) FindEntry(timestamp int64) (models.Entry, bool) {
	for _, e := range s.GetEntries() {
		if e.Timestamp == timestamp {
			return e, true
		}
	}
	return models.Entry{}, false
}

// SaveEntry appends a new entry stamped with the current time and returns
// it. If the existing list cannot be read the write is skipped so stored
// entries are never overwritten with a partial list.
func (s *Store) SaveEntry(data models.Payload) models.Entry {
	entry := models.Entry{
		Timestamp: s.now().UnixMilli(),
		Sport:     data.Sport(),
		Data:      data,
	}

	existing, err := s.readEntries()
	if err != nil {
		logger.Warn("Failed to save entry", "sport", entry.Sport, "error", err)
		return entry
	}

	if err := s.writeEntries(append(existing, entry)); err != nil {
		logger.Warn("Failed to save entry", "sport", entry.Sport, "error", err)
		return entry
	}

	logger.Debug("Saved entry", "timestamp", entry.Timestamp, "sport", entry.Sport)
	return entry
}

// UpdateEntry replaces the sport and payload of the first entry whose
// timestamp matches. Nothing is written when no entry matches.
func (s *Store) UpdateEntry(timestamp int64, data models.Payload) {
	entries, err := s.readEntries()
	if err != nil {
		logger.Warn("Failed to update entry", "timestamp", timestamp, "error", err)
		return
	}

	idx := -1
	for i, e := range entries {
		if e.Timestamp == timestamp {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("No entry to update", "timestamp", timestamp)
		return
	}

	entries[idx] = models.Entry{
		Timestamp: timestamp,
		Sport:     data.Sport(),
		Data:      data,
	}
	if err := s.writeEntries(entries); err != nil {
		logger.Warn("Failed to update entry", "timestamp", timestamp, "error", err)
		return
	}

	logger.Debug("Updated entry", "timestamp", timestamp, "sport", data.Sport())
}

// ClearEntries deletes the stored entry list.
func (s *Store) ClearEntries() {
	if err := s.provider.Remove(constants.EntriesKey); err != nil {
		logger.Warn("Failed to clear entries", "error", err)
	}
}

// GetSettings returns the stored settings, the default catalog when none are
// stored, and an empty Settings when the document cannot be read.
func (s *Store) GetSettings() models.Settings {
	settings, err := s.readSettings()
	if err != nil {
		logger.Warn("Failed to read settings", "error", err)
		return models.Settings{}
	}
	return settings
}

// GetSettingsOrDefault is GetSettings but falls back to the default catalog
// on read failure as well.
func (s *Store) GetSettingsOrDefault() models.Settings {
	settings, err := s.readSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

func (s *Store) readSettings() (models.Settings, error) {
	raw, err := s.provider.Get(constants.SettingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, err
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings overwrites the stored settings document.
func (s *Store) SaveSettings(settings models.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		logger.Warn("Failed to encode settings", "error", err)
		return
	}
	if err := s.provider.Set(constants.SettingsKey, string(data)); err != nil {
		logger.Warn("Failed to save settings", "error", err)
	}
}

// ExportDocuments returns both stored documents in their persisted layout.
func (s *Store) ExportDocuments() ([]byte, error) {
	entries, err := s.readEntries()
	if err != nil {
		return nil, err
	}
	settings, err := s.readSettings()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(struct {
		Entries  []models.Entry  `json:"trainingDiaryEntries"`
		Settings models.Settings `json:"trainingDiarySettings"`
	}{entries, settings}, "", "  ")
}

// Verify reads both documents and reports the first problem found, including
// entries that share a timestamp and therefore cannot be told apart.
func (s *Store) Verify() error {
	entries, err := s.readEntries()
	if err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	seen := make(map[int64]bool, len(entries))
	for _, e := range entries {
		if seen[e.Timestamp] {
			return fmt.Errorf("entries: duplicate timestamp %d", e.Timestamp)
		}
		seen[e.Timestamp] = true
	}
	if _, err := s.readSettings(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Latest returns entries newest first, optionally filtered by sport and
// truncated to limit.
func Latest(entries []models.Entry, sport models.Sport, limit int) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if sport != "" && entries[i].Sport != sport {
			continue
		}
		out = append(out, entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
