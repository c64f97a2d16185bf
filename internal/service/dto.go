package service

import (
	"chessd/internal/chess"
	"chessd/internal/engine"
	"chessd/internal/game"
)

// GameState is the snapshot shape the API returns and the hub broadcasts.
// Board holds 8 ranks of 8 cells, rank 8 first, each cell a piece letter
// or an empty string.
type GameState struct {
	GameID   string     `json:"gameId"`
	Board    [][]string `json:"board"`
	ToMove   string     `json:"toMove"`
	Status   Status     `json:"status"`
	LastMove *MoveInfo  `json:"lastMove,omitempty"`
	History  []string   `json:"history"`
}

// Status is the wire form of chess.GameStatus. Colour is set for check
// and checkmate only.
type Status struct {
	Kind   string `json:"kind"`
	Colour string `json:"colour,omitempty"`
}

// MoveInfo describes one applied move in coordinate notation.
type MoveInfo struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveRequest is a move attempt: squares in coordinate notation and an
// optional promotion letter (q, r, b, n).
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// Destinations lists where the piece on From may legally go.
type Destinations struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
}

// snapshotGame renders a game into its wire shape.
func snapshotGame(gameID string, g *game.Game) GameState {
	board := g.Board()
	grid := make([][]string, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]string, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.Square{File: file, Rank: rank})
			if piece != chess.Empty {
				row[file] = string(engine.PieceToFENLetter(piece))
			}
		}
		grid[chess.BoardSize-1-rank] = row
	}

	moves := g.History()
	history := make([]string, 0, len(moves))
	for _, move := range moves {
		history = append(history, move.String())
	}

	state := GameState{
		GameID:  gameID,
		Board:   grid,
		ToMove:  colourJSON(g.ToMove()),
		Status:  statusJSON(g.Status()),
		History: history,
	}
	if last, ok := g.LastMove(); ok {
		state.LastMove = &MoveInfo{
			From:      last.From.String(),
			To:        last.To.String(),
			Promotion: promotionJSON(last.Promotion),
		}
	}
	return state
}

func colourJSON(colour chess.Colour) string {
	if colour == chess.White {
		return "white"
	}
	return "black"
}

func statusJSON(status chess.GameStatus) Status {
	var kind string
	switch status.Kind {
	case chess.StatusCheck:
		kind = "check"
	case chess.StatusCheckmate:
		kind = "checkmate"
	case chess.StatusStalemate:
		kind = "stalemate"
	case chess.StatusDrawOther:
		kind = "drawOther"
	default:
		kind = "inProgress"
	}

	out := Status{Kind: kind}
	if status.Kind == chess.StatusCheck || status.Kind == chess.StatusCheckmate {
		out.Colour = colourJSON(status.Colour)
	}
	return out
}

func promotionJSON(piece chess.Piece) string {
	if piece == chess.Empty {
		return ""
	}
	return string(piece.Letter() | 0x20)
}
