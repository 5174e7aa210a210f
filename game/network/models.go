package network

import "Damka/game/core"

type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}

type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PlayerState struct {
	Name     string `json:"name"`
	Side     string `json:"side"`
	Score    int    `json:"score"`
	Pieces   int    `json:"pieces"`
	Kings    int    `json:"kings"`
	Computer bool   `json:"computer"`
}

type GameState struct {
	Board          [][]string     `json:"board"`
	BoardSize      int            `json:"boardSize"`
	Players        [2]PlayerState `json:"players"`
	CurrentPlayer  string         `json:"currentPlayer"`
	Status         string         `json:"status"`
	PendingCapture string         `json:"pendingCapture,omitempty"`
	YourSide       string         `json:"yourSide,omitempty"`
	Winner         string         `json:"winner,omitempty"`
	LastMoves      []string       `json:"lastMoves,omitempty"`
}

// NewGameState snapshots g. Cells hold the owner's piece symbol or "".
func NewGameState(g *core.Game) GameState {
	rows := g.Board().Rows()
	board := make([][]string, len(rows))
	for i, row := range rows {
		board[i] = make([]string, len(row))
		for j, cell := range row {
			if cell.Piece != nil {
				board[i][j] = string(g.Player(cell.Piece.Side).Symbol(cell.Piece.Type))
			}
		}
	}

	state := GameState{
		Board:         board,
		BoardSize:     int(g.BoardSize()),
		Players:       [2]PlayerState{playerState(g.FirstPlayer()), playerState(g.SecondPlayer())},
		CurrentPlayer: g.CurrentPlayer().Side().String(),
		Status:        g.Status().String(),
	}
	if at, ok := g.PendingCapture(); ok {
		state.PendingCapture = at.String()
	}
	if w := g.Winner(); w != nil {
		state.Winner = w.Side().String()
	}
	return state
}

func playerState(p *core.Player) PlayerState {
	return PlayerState{
		Name:     p.Name(),
		Side:     p.Side().String(),
		Score:    p.Score(),
		Pieces:   p.PieceCount(),
		Kings:    p.KingCount(),
		Computer: p.IsComputer(),
	}
}
