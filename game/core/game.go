package core

import "fmt"

type Status int

const (
	InProgress Status = iota
	// AwaitingContinuation means the side to move is in the middle of a
	// capture chain and must jump again from PendingCapture.
	AwaitingContinuation
	Finished
)

func (s Status) String() string {
	switch s {
	case AwaitingContinuation:
		return "awaiting_continuation"
	case Finished:
		return "finished"
	default:
		return "in_progress"
	}
}

// Game owns one board and both players for the lifetime of a match.
// It is not safe for concurrent use.
type Game struct {
	size    BoardSize
	board   *Board
	players [2]*Player
	turn    Side

	finished bool
	winner   *Player
	pending  *Location
}

// NewGame seeds the starting position. A player named ComputerName is
// controlled by the AI.
func NewGame(size BoardSize, firstName, secondName string) (*Game, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}
	g := &Game{
		size:  size,
		board: NewBoard(size),
		players: [2]*Player{
			newPlayer(firstName, First),
			newPlayer(secondName, Second),
		},
	}
	g.RestartGame()
	return g, nil
}

// RestartGame clears all mutable state in place and reseeds the board.
func (g *Game) RestartGame() {
	g.turn = First
	g.finished = false
	g.winner = nil
	g.pending = nil
	g.board.reset()
	for _, p := range g.players {
		p.reset()
	}

	n := int(g.size)
	topEnd := (n - 2) / 2
	bottomStart := topEnd + 1
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			loc := Location{Row: row, Column: col}
			if !IsDark(loc) {
				continue
			}
			var owner *Player
			switch {
			case row < topEnd:
				owner = g.players[Second]
			case row > bottomStart:
				owner = g.players[First]
			default:
				continue
			}
			pc := &Piece{Side: owner.side, Type: Regular}
			g.board.Place(loc, pc)
			owner.addPiece(pc)
		}
	}

	g.recomputeAll()
}

func (g *Game) Board() *Board        { return g.board }
func (g *Game) BoardSize() BoardSize  { return g.size }
func (g *Game) FirstPlayer() *Player  { return g.players[First] }
func (g *Game) SecondPlayer() *Player { return g.players[Second] }
func (g *Game) Player(s Side) *Player { return g.players[s] }
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turn]
}
func (g *Game) OpponentPlayer() *Player {
	return g.players[g.turn.Opponent()]
}
func (g *Game) IsFinished() bool { return g.finished }

// Winner is nil while the game runs and after a draw.
func (g *Game) Winner() *Player { return g.winner }

// PendingCapture returns the square the side to move must keep capturing
// from, if a chain is in progress.
func (g *Game) PendingCapture() (Location, bool) {
	if g.pending == nil {
		return Location{}, false
	}
	return *g.pending, true
}

func (g *Game) Status() Status {
	switch {
	case g.finished:
		return Finished
	case g.pending != nil:
		return AwaitingContinuation
	default:
		return InProgress
	}
}

// Clone returns an independent deep copy of the whole game state.
func (g *Game) Clone() *Game {
	c := &Game{
		size:     g.size,
		board:    NewBoard(g.size),
		turn:     g.turn,
		finished: g.finished,
	}
	if g.pending != nil {
		loc := *g.pending
		c.pending = &loc
	}
	for i, p := range g.players {
		cp := &Player{
			name:       p.name,
			side:       p.side,
			symbol:     p.symbol,
			kingSymbol: p.kingSymbol,
			computer:   p.computer,
			moves:      append([]Move(nil), p.moves...),
			captures:   append([]Move(nil), p.captures...),
			score:      p.score,
			kings:      p.kings,
			pieces:     make([]*Piece, 0, len(p.pieces)),
		}
		for _, pc := range p.pieces {
			dup := *pc
			c.board.Place(dup.Location, &dup)
			cp.pieces = append(cp.pieces, &dup)
		}
		c.players[i] = cp
		if g.winner == p {
			c.winner = cp
		}
	}
	return c
}
