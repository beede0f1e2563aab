package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mhoff/pawnstorm/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	gamePrefix     = "game:"
)

// ErrGameNotFound is returned when loading or deleting a saved game that
// does not exist.
var ErrGameNotFound = errors.New("saved game not found")

// SavedGame is a game in progress, stored as the position snapshot plus
// the settings it was played with.
type SavedGame struct {
	ID          string          `json:"id"`
	Snapshot    *board.Snapshot `json:"snapshot"`
	EngineColor board.Color     `json:"engine_color"`
	SearchDepth int             `json:"search_depth"`
	SavedAt     time.Time       `json:"saved_at"`
}

// Preferences stores player settings.
type Preferences struct {
	SearchDepth int         `json:"search_depth"`
	EngineColor board.Color `json:"engine_color"`
	LastPlayed  time.Time   `json:"last_played"`
}

// DefaultPreferences returns the default player settings: the engine
// plays black at depth 4.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SearchDepth: 4,
		EngineColor: board.Black,
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) a database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame writes a saved game, overwriting any existing game with the
// same ID. The SavedAt timestamp is set on write.
func (s *Storage) SaveGame(game *SavedGame) error {
	game.SavedAt = time.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(game.ID), data)
	})
}

// LoadGame loads a saved game by ID.
func (s *Storage) LoadGame(id string) (*SavedGame, error) {
	var game SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &game)
		})
	})
	if err != nil {
		return nil, err
	}

	return &game, nil
}

// ListGames returns all saved games, in key order.
func (s *Storage) ListGames() ([]*SavedGame, error) {
	var games []*SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var game SavedGame
				if err := json.Unmarshal(val, &game); err != nil {
					return err
				}
				games = append(games, &game)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return games, nil
}

// DeleteGame removes a saved game by ID.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

// SavePreferences saves player preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads player preferences, returning defaults if none
// have been saved.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	if err != nil {
		return nil, err
	}

	return prefs, nil
}
