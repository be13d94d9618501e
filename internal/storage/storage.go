package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores console and rendering settings.
type Preferences struct {
	Username    string    `json:"username"`
	SquareSize  int       `json:"square_size"`
	Flip        bool      `json:"flip"`
	ShowAttacks bool      `json:"show_attacks"`
	LastUsed    time.Time `json:"last_used"`
}

// DefaultPreferences returns default preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:    "Player",
		SquareSize:  64,
		ShowAttacks: true,
		LastUsed:    time.Now(),
	}
}

// MoveStats counts what happened to submitted moves.
type MoveStats struct {
	Applied          int            `json:"applied"`
	Rejected         int            `json:"rejected"`
	RejectedByReason map[string]int `json:"rejected_by_reason"`
	Captures         int            `json:"captures"`
	Castles          int            `json:"castles"`
	EnPassant        int            `json:"en_passant"`
}

// NewMoveStats returns empty statistics.
func NewMoveStats() *MoveStats {
	return &MoveStats{
		RejectedByReason: make(map[string]int),
	}
}

// MoveResult describes one submitted move. Reason is empty when the move
// was applied.
type MoveResult struct {
	Reason    string
	Capture   bool
	Castle    bool
	EnPassant bool
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched if the key is absent.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// SavePreferences saves preferences and stamps LastUsed.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves move statistics
func (s *Storage) SaveStats(stats *MoveStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads move statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*MoveStats, error) {
	stats := NewMoveStats()
	if err := s.get(keyStats, stats); err != nil {
		return stats, err
	}
	if stats.RejectedByReason == nil {
		stats.RejectedByReason = make(map[string]int)
	}
	return stats, nil
}

// RecordMove folds one move result into the stored statistics.
func (s *Storage) RecordMove(result MoveResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Record(result)
	return s.SaveStats(stats)
}

// Record folds result into the counters.
func (st *MoveStats) Record(result MoveResult) {
	if result.Reason != "" {
		st.Rejected++
		st.RejectedByReason[result.Reason]++
		return
	}

	st.Applied++
	if result.Capture {
		st.Captures++
	}
	if result.Castle {
		st.Castles++
	}
	if result.EnPassant {
		st.EnPassant++
	}
}

// RejectionRate returns the share of rejected moves as a percentage (0-100)
func (st *MoveStats) RejectionRate() float64 {
	total := st.Applied + st.Rejected
	if total == 0 {
		return 0
	}
	return float64(st.Rejected) / float64(total) * 100
}
