package core

import "testing"

// emptyGame returns a game with no pieces on the board.
func emptyGame(t *testing.T, size BoardSize, first, second string) *Game {
	t.Helper()
	g, err := NewGame(size, first, second)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.board.reset()
	for _, p := range g.players {
		p.reset()
	}
	return g
}

func loc(t *testing.T, s string) Location {
	t.Helper()
	l, err := ParseLocation(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return l
}

func put(t *testing.T, g *Game, side Side, typ PieceType, at string) *Piece {
	t.Helper()
	pc := &Piece{Side: side, Type: typ}
	g.board.Place(loc(t, at), pc)
	g.players[side].addPiece(pc)
	if typ == King {
		g.players[side].kings++
	}
	return pc
}

// checkInvariants verifies the structural rules that must hold after every
// applied move.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	onBoard := 0
	for _, row := range g.board.Rows() {
		for _, cell := range row {
			if cell.Piece == nil {
				continue
			}
			onBoard++
			if cell.Piece.Location != cell.Location {
				t.Fatalf("piece cached at %s but held by %s", cell.Piece.Location, cell.Location)
			}
			if !IsDark(cell.Location) {
				t.Fatalf("piece on light square %s", cell.Location)
			}
		}
	}
	owned := 0
	for _, p := range g.players {
		owned += p.PieceCount()
		for _, pc := range p.pieces {
			if g.board.PieceAt(pc.Location) != pc {
				t.Fatalf("%s piece at %s missing from board", p.side, pc.Location)
			}
		}
		if len(p.captures) > 0 && len(p.moves) > 0 {
			t.Fatalf("%s has %d captures and %d simple moves", p.side, len(p.captures), len(p.moves))
		}
		kings := 0
		for _, pc := range p.pieces {
			if pc.Type == King {
				kings++
			}
		}
		if kings != p.kings {
			t.Fatalf("%s king counter %d, kings on board %d", p.side, p.kings, kings)
		}
	}
	if owned != onBoard {
		t.Fatalf("players own %d pieces, board holds %d", owned, onBoard)
	}
}
