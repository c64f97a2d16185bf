// Package service owns the live games. The manager keeps the registry,
// the service exposes game operations to the controllers and pushes
// state to websocket subscribers.
package service

import (
	"sync"

	"github.com/google/uuid"

	"chessd/internal/errors"
	"chessd/internal/game"
)

// managedGame pairs a game with its own lock, so exactly one request at a
// time touches a given game. Games are independent; the registry lock is
// never held while a game is being worked on.
type managedGame struct {
	mu   sync.Mutex
	game *game.Game
}

// GameManager is the registry of live games, keyed by uuid.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*managedGame
}

// NewGameManager creates an empty registry.
func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*managedGame),
	}
}

// Create registers a fresh game at the standard starting position and
// returns its id.
func (m *GameManager) Create() string {
	gameID := uuid.New().String()

	m.mu.Lock()
	m.games[gameID] = &managedGame{game: game.New()}
	m.mu.Unlock()

	return gameID
}

// Exists reports whether a game id is registered.
func (m *GameManager) Exists(gameID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.games[gameID]
	return ok
}

// Count returns the number of live games.
func (m *GameManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.games)
}

// WithGame runs fn with exclusive access to the identified game.
func (m *GameManager) WithGame(gameID string, fn func(*game.Game) error) error {
	m.mu.RLock()
	entry, ok := m.games[gameID]
	m.mu.RUnlock()
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", gameID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.game)
}
