package core

// ComputerName is the reserved player name that hands a seat to the AI.
const ComputerName = "Computer"

type Player struct {
	name       string
	side       Side
	symbol     rune
	kingSymbol rune
	computer   bool

	pieces   []*Piece
	moves    []Move
	captures []Move
	score    int
	kings    int
}

func newPlayer(name string, side Side) *Player {
	p := &Player{
		name:     name,
		side:     side,
		computer: name == ComputerName,
	}
	if side == First {
		p.symbol, p.kingSymbol = 'X', 'K'
	} else {
		p.symbol, p.kingSymbol = 'O', 'U'
	}
	return p
}

func (p *Player) Name() string      { return p.name }
func (p *Player) Side() Side        { return p.side }
func (p *Player) IsComputer() bool  { return p.computer }
func (p *Player) Score() int        { return p.score }
func (p *Player) KingCount() int    { return p.kings }
func (p *Player) PieceCount() int   { return len(p.pieces) }
func (p *Player) RegularCount() int { return len(p.pieces) - p.kings }

// Symbol returns the display rune for the given piece type.
func (p *Player) Symbol(t PieceType) rune {
	if t == King {
		return p.kingSymbol
	}
	return p.symbol
}

// Moves returns a copy of the cached simple moves.
func (p *Player) Moves() []Move {
	return append([]Move(nil), p.moves...)
}

// Captures returns a copy of the cached capture moves.
func (p *Player) Captures() []Move {
	return append([]Move(nil), p.captures...)
}

// Pieces returns the owned pieces in placement order.
func (p *Player) Pieces() []Piece {
	out := make([]Piece, 0, len(p.pieces))
	for _, pc := range p.pieces {
		out = append(out, *pc)
	}
	return out
}

func (p *Player) material() int {
	return p.RegularCount() + 4*p.kings
}

func (p *Player) addPiece(pc *Piece) {
	p.pieces = append(p.pieces, pc)
}

func (p *Player) removePiece(pc *Piece) {
	for i, owned := range p.pieces {
		if owned == pc {
			p.pieces = append(p.pieces[:i], p.pieces[i+1:]...)
			if pc.Type == King {
				p.kings--
			}
			return
		}
	}
}

func (p *Player) clearMoves() {
	p.moves = p.moves[:0]
	p.captures = p.captures[:0]
}

// reset keeps the identity fields and drops everything a game accumulates.
func (p *Player) reset() {
	p.pieces = nil
	p.moves = nil
	p.captures = nil
	p.score = 0
	p.kings = 0
}
