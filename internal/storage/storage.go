package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Key prefixes
const (
	prefixPosition = "position:"
	prefixGame     = "game:"
	keyStats       = "stats"
)

// Game results
const (
	ResultSenteWin = "sente"
	ResultGoteWin  = "gote"
	ResultDraw     = "draw"
)

// SavedPosition is one entry of the position library.
type SavedPosition struct {
	Name    string    `json:"name"`
	SFEN    string    `json:"sfen"`
	SavedAt time.Time `json:"saved_at"`
}

// GameRecord describes one finished game.
type GameRecord struct {
	ID        string    `json:"id"`
	StartSFEN string    `json:"start_sfen"`
	Moves     []string  `json:"moves"`
	Result    string    `json:"result"`
	PlayedAt  time.Time `json:"played_at"`
}

// GameStats aggregates results over all recorded games.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	SenteWins   int `json:"sente_wins"`
	GoteWins    int `json:"gote_wins"`
	Draws       int `json:"draws"`
	TotalMoves  int `json:"total_moves"`
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

// Open opens the database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
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

// SavePosition stores a named SFEN string, overwriting any previous entry.
func (s *Storage) SavePosition(name, sfen string) error {
	data, err := json.Marshal(SavedPosition{
		Name:    name,
		SFEN:    sfen,
		SavedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefixPosition+name), data)
	})
}

// LoadPosition returns the SFEN string saved under the given name.
func (s *Storage) LoadPosition(name string) (string, error) {
	var saved SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixPosition + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no position saved as %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})

	return saved.SFEN, err
}

// ListPositions returns every saved position.
func (s *Storage) ListPositions() ([]SavedPosition, error) {
	var positions []SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixPosition)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var saved SavedPosition
				if err := json.Unmarshal(val, &saved); err != nil {
					return err
				}
				positions = append(positions, saved)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return positions, err
}

// RecordGame stores a finished game and folds it into the statistics.
// A missing ID is filled in; the assigned ID is returned.
func (s *Storage) RecordGame(rec GameRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return "", err
	}

	stats.GamesPlayed++
	stats.TotalMoves += len(rec.Moves)
	switch rec.Result {
	case ResultSenteWin:
		stats.SenteWins++
	case ResultGoteWin:
		stats.GoteWins++
	case ResultDraw:
		stats.Draws++
	default:
		return "", fmt.Errorf("unknown game result %q", rec.Result)
	}

	statsData, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixGame+rec.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}

// LoadGame returns the record stored under the given ID.
func (s *Storage) LoadGame(id string) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixGame + id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no game recorded as %q", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// LoadStats loads the aggregate statistics, empty if none were recorded.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // No games yet
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// WinRate returns sente's win rate as a percentage (0-100).
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.SenteWins) / float64(s.GamesPlayed) * 100
}
