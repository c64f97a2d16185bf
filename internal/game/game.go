// Package game ties the rules engine to a playable game: it tracks a
// board, adjudicates the status after every move, and turns raw move
// requests into applied moves or structured rejections.
package game

import (
	"sort"

	"chessd/internal/chess"
	"chessd/internal/engine"
	"chessd/internal/errors"
)

// Game is one chess game, from the initial (or a given) position until a
// terminal status. It is not safe for concurrent use; callers serialize
// access.
type Game struct {
	board   *chess.Board
	status  chess.GameStatus
	history []chess.Move
}

// New creates a game at the standard starting position.
func New() *Game {
	return &Game{
		board:  engine.NewInitialBoard(),
		status: chess.GameStatus{Kind: chess.StatusInProgress},
	}
}

// NewFromFEN creates a game from an arbitrary position. The position must
// carry both kings. The status is adjudicated immediately, so a game can
// begin already checkmated or stalemated.
func NewFromFEN(fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := engine.KingSquare(board, colour); !ok {
			return nil, &errors.ParseError{
				Err:   errors.ErrInvalidFEN,
				Input: fen,
				Field: "piece placement",
				Got:   "no " + colour.String() + " king",
			}
		}
	}
	return &Game{board: board, status: engine.StatusOf(board)}, nil
}

// Board returns the live board. The game owns it; callers read, never
// mutate.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Status returns the adjudicated status of the current position.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// FEN renders the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// History returns the applied moves in order.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the most recently applied move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Reset returns the game to the standard starting position and clears the
// move history.
func (g *Game) Reset() {
	g.board = engine.NewInitialBoard()
	g.status = chess.GameStatus{Kind: chess.StatusInProgress}
	g.history = nil
}

// LegalDestinations returns the squares the piece on from can legally
// reach, deduplicated (the four promotion moves share a destination) and
// sorted by file then rank. The list is empty when the square holds no
// piece of the side to move, and when the game is over.
func (g *Game) LegalDestinations(from chess.Square) ([]chess.Square, error) {
	if !from.Valid() {
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "file %d, rank %d", from.File, from.Rank)
	}
	if g.status.Terminal() {
		return nil, nil
	}

	moves := engine.LegalMoves(g.board, from)
	seen := make(map[chess.Square]bool, len(moves))
	dests := make([]chess.Square, 0, len(moves))
	for _, move := range moves {
		if !seen[move.To] {
			seen[move.To] = true
			dests = append(dests, move.To)
		}
	}
	sort.Slice(dests, func(i, j int) bool {
		if dests[i].File != dests[j].File {
			return dests[i].File < dests[j].File
		}
		return dests[i].Rank < dests[j].Rank
	})
	return dests, nil
}

// AttemptMove validates and applies a move given as source, destination,
// and an optional promotion kind. On success the move is recorded, the
// status re-adjudicated, and the new status returned. On rejection the
// board is untouched and the error carries the reason.
func (g *Game) AttemptMove(from, to chess.Square, promotion chess.Piece) (chess.GameStatus, error) {
	if !from.Valid() {
		return g.status, errors.Wrapf(errors.ErrOutOfBounds, "file %d, rank %d", from.File, from.Rank)
	}
	if !to.Valid() {
		return g.status, errors.Wrapf(errors.ErrOutOfBounds, "file %d, rank %d", to.File, to.Rank)
	}
	if g.status.Terminal() {
		return g.status, rejectMove(errors.ErrGameOver, from, to, promotion, "the game has ended")
	}

	piece := g.board.PieceAt(from)
	switch {
	case piece == chess.Empty:
		return g.status, rejectMove(errors.ErrIllegalMove, from, to, promotion, "no piece on the source square")
	case chess.ExtractColour(piece) != g.board.ToMove:
		return g.status, rejectMove(errors.ErrIllegalMove, from, to, promotion, "the piece belongs to the opponent")
	}

	move, err := g.matchMove(from, to, promotion)
	if err != nil {
		return g.status, err
	}

	engine.Apply(g.board, move)
	g.history = append(g.history, move)
	g.status = engine.StatusOf(g.board)
	return g.status, nil
}

// matchMove resolves the request against the legal moves from the source
// square. Promotion requests are matched against the generator's fan-out,
// so an unstated or impossible promotion piece is rejected rather than
// guessed.
func (g *Game) matchMove(from, to chess.Square, promotion chess.Piece) (chess.Move, error) {
	var candidates []chess.Move
	for _, move := range engine.LegalMoves(g.board, from) {
		if move.To == to {
			candidates = append(candidates, move)
		}
	}

	if len(candidates) == 0 {
		reason := "the piece cannot reach the destination"
		if pseudoReaches(g.board, from, to) {
			reason = "the move would leave the king in check"
		}
		return chess.Move{}, rejectMove(errors.ErrIllegalMove, from, to, promotion, reason)
	}

	if candidates[0].IsPromotion() {
		if promotion == chess.Empty {
			return chess.Move{}, rejectMove(errors.ErrIllegalMove, from, to, promotion, "a promotion piece is required")
		}
		for _, move := range candidates {
			if move.Promotion == promotion {
				return move, nil
			}
		}
		return chess.Move{}, rejectMove(errors.ErrIllegalMove, from, to, promotion, "invalid promotion piece")
	}

	if promotion != chess.Empty {
		return chess.Move{}, rejectMove(errors.ErrIllegalMove, from, to, promotion, "the move does not promote")
	}
	return candidates[0], nil
}

// pseudoReaches reports whether the movement shape alone reaches the
// destination. It distinguishes "cannot reach" from "leaves the king in
// check" in rejection reasons.
func pseudoReaches(board *chess.Board, from, to chess.Square) bool {
	for _, move := range engine.PseudoLegalMoves(board, from) {
		if move.To == to {
			return true
		}
	}
	return false
}

func rejectMove(sentinel error, from, to chess.Square, promotion chess.Piece, reason string) *errors.IllegalMoveError {
	e := &errors.IllegalMoveError{
		Err:    sentinel,
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
	if promotion != chess.Empty {
		e.Promotion = string(promotion.Letter() | 0x20)
	}
	return e
}
