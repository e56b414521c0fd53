// Package store persists games as a log of committed moves in BadgerDB.
//
// Keys are laid out per game:
//
//	game/<id>/settings        JSON GameSettings the game started from
//	game/<id>/move/<ply>      JSON CommittedMove, ply zero-padded
//
// so a prefix scan returns the moves of one game in order.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

const gamePrefix = "game/"

// CommittedMove is one accepted move of a stored game.
type CommittedMove struct {
	Ply       int    `json:"ply"`
	FenBefore string `json:"fen_before"`
	FenAfter  string `json:"fen_after"`
	Move      string `json:"move"`
}

// Store wraps BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens the database described by cfg. Badger diagnostics go to logw
// at the given verbosity.
func Open(cfg *config.StoreConfig, logw io.Writer, verbosity int) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("no database path: %w", errors.ErrInvalidConfig)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(newLogger(logw, verbosity))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store %q", cfg.Path)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func settingsKey(gameID string) []byte {
	return []byte(gamePrefix + gameID + "/settings")
}

func movePrefix(gameID string) []byte {
	return []byte(gamePrefix + gameID + "/move/")
}

func moveKey(gameID string, ply int) []byte {
	return fmt.Appendf(movePrefix(gameID), "%08d", ply)
}

// CreateGame stores the settings of a new game, discarding any moves
// previously stored under the same id.
func (s *Store) CreateGame(gameID string, settings config.GameSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, movePrefix(gameID)); err != nil {
			return err
		}
		return txn.Set(settingsKey(gameID), data)
	})
}

// Settings loads the settings a game was created with.
func (s *Store) Settings(gameID string) (config.GameSettings, error) {
	var settings config.GameSettings

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(settingsKey(gameID))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", gameID, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &settings)
		})
	})

	return settings, err
}

// Append records a committed move of an existing game.
func (s *Store) Append(gameID string, m CommittedMove) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(settingsKey(gameID)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", gameID, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Set(moveKey(gameID, m.Ply), data)
	})
}

// NewCommittedMove describes the move that turned before into after.
func NewCommittedMove(before, after *engine.Game, move string) CommittedMove {
	return CommittedMove{
		Ply:       after.Ply(),
		FenBefore: before.Fen(),
		FenAfter:  after.Fen(),
		Move:      move,
	}
}

// Moves returns the committed moves of a game in ply order.
func (s *Store) Moves(gameID string) ([]CommittedMove, error) {
	if _, err := s.Settings(gameID); err != nil {
		return nil, err
	}

	var moves []CommittedMove
	prefix := movePrefix(gameID)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m CommittedMove
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			})
			if err != nil {
				return err
			}
			moves = append(moves, m)
		}
		return nil
	})

	return moves, err
}

// Games returns the ids of every stored game in key order.
func (s *Store) Games() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			if id, ok := strings.CutSuffix(strings.TrimPrefix(key, gamePrefix), "/settings"); ok {
				ids = append(ids, id)
			}
		}
		return nil
	})

	return ids, err
}

// Delete removes a game and its moves.
func (s *Store) Delete(gameID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, movePrefix(gameID)); err != nil {
			return err
		}
		return txn.Delete(settingsKey(gameID))
	})
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// Resume rebuilds a stored game by replaying its moves from the stored
// settings, so repetition history is restored along with the position.
func (s *Store) Resume(gameID string) (*engine.Game, error) {
	settings, err := s.Settings(gameID)
	if err != nil {
		return nil, err
	}
	moves, err := s.Moves(gameID)
	if err != nil {
		return nil, err
	}

	g, err := engine.InitGameWithSettings(settings)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		next, err := g.Move(m.Move)
		if err != nil {
			return nil, errors.Wrapf(err, "replaying ply %d of %q", m.Ply, gameID)
		}
		if next == g || next.Fen() != m.FenAfter {
			return nil, fmt.Errorf("replaying ply %d of %q: move %s does not lead to %q: %w",
				m.Ply, gameID, m.Move, m.FenAfter, errors.ErrInvariant)
		}
		g = next
	}
	return g, nil
}
