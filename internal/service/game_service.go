package service

import (
	"log"

	"chessd/internal/chess"
	"chessd/internal/errors"
	"chessd/internal/game"
	"chessd/internal/ws"
)

// GameService is the facade the controllers call. It resolves game ids,
// runs operations under the per-game lock, and pushes fresh state to the
// game's websocket subscribers after every applied move.
type GameService struct {
	manager *GameManager
	hub     *hub
}

// NewGameService wires a service around a game registry.
func NewGameService(manager *GameManager) *GameService {
	return &GameService{
		manager: manager,
		hub:     newHub(),
	}
}

// CreateGame registers a fresh game and returns its id.
func (s *GameService) CreateGame() string {
	return s.manager.Create()
}

// Snapshot returns the full state of a game.
func (s *GameService) Snapshot(gameID string) (GameState, error) {
	var state GameState
	err := s.manager.WithGame(gameID, func(g *game.Game) error {
		state = snapshotGame(gameID, g)
		return nil
	})
	return state, err
}

// LegalDestinations answers where the piece on from may legally move.
func (s *GameService) LegalDestinations(gameID, from string) (Destinations, error) {
	square, err := chess.ParseSquare(from)
	if err != nil {
		return Destinations{}, err
	}

	out := Destinations{From: square.String(), Destinations: []string{}}
	err = s.manager.WithGame(gameID, func(g *game.Game) error {
		dests, err := g.LegalDestinations(square)
		if err != nil {
			return err
		}
		for _, dest := range dests {
			out.Destinations = append(out.Destinations, dest.String())
		}
		return nil
	})
	if err != nil {
		return Destinations{}, err
	}
	return out, nil
}

// AttemptMove validates and applies a move. On success the refreshed
// state is returned and broadcast to the game's subscribers; on rejection
// the error carries the reason and the game is untouched.
func (s *GameService) AttemptMove(gameID string, req MoveRequest) (GameState, error) {
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		return GameState{}, err
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		return GameState{}, err
	}
	promotion, err := parsePromotion(req)
	if err != nil {
		return GameState{}, err
	}

	var state GameState
	err = s.manager.WithGame(gameID, func(g *game.Game) error {
		if _, err := g.AttemptMove(from, to, promotion); err != nil {
			return err
		}
		state = snapshotGame(gameID, g)
		return nil
	})
	if err != nil {
		return GameState{}, err
	}

	s.broadcastState(gameID, state)
	return state, nil
}

// Reset returns the identified game to the starting position.
func (s *GameService) Reset(gameID string) (GameState, error) {
	var state GameState
	err := s.manager.WithGame(gameID, func(g *game.Game) error {
		g.Reset()
		state = snapshotGame(gameID, g)
		return nil
	})
	if err != nil {
		return GameState{}, err
	}

	s.broadcastState(gameID, state)
	return state, nil
}

// Subscribe registers a connection for a game's state pushes and sends it
// the current state right away.
func (s *GameService) Subscribe(gameID string, w Writer) error {
	state, err := s.Snapshot(gameID)
	if err != nil {
		return err
	}
	s.hub.subscribe(gameID, w)

	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		return err
	}
	return w.WriteJSON(msg)
}

// Unsubscribe removes a connection from a game's push list.
func (s *GameService) Unsubscribe(gameID string, w Writer) {
	s.hub.unsubscribe(gameID, w)
}

func (s *GameService) broadcastState(gameID string, state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Printf("ws: marshal state for game %s: %v", gameID, err)
		return
	}
	s.hub.broadcast(gameID, msg)
}

// parsePromotion maps the request's promotion letter to a piece kind. The
// game decides whether the kind is playable; this only transliterates.
func parsePromotion(req MoveRequest) (chess.Piece, error) {
	if req.Promotion == "" {
		return chess.Empty, nil
	}
	if len(req.Promotion) == 1 {
		if piece, ok := chess.PieceFromLetter(req.Promotion[0]); ok {
			return piece, nil
		}
	}
	return chess.Empty, &errors.IllegalMoveError{
		Err:       errors.ErrIllegalMove,
		From:      req.From,
		To:        req.To,
		Promotion: req.Promotion,
		Reason:    "unknown promotion letter",
	}
}
