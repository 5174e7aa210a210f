package core

import "fmt"

// TryMove parses two-letter coordinates (see Location.String) and applies
// the move for the side to move.
func (g *Game) TryMove(origin, destination string) error {
	from, err := ParseLocation(origin)
	if err != nil {
		return err
	}
	to, err := ParseLocation(destination)
	if err != nil {
		return err
	}
	return g.ApplyMove(from, to)
}

// ApplyMove validates and plays one hop for the side to move. A rejected
// move leaves the game untouched.
func (g *Game) ApplyMove(origin, destination Location) error {
	if g.finished {
		return ErrGameFinished
	}

	mover := g.CurrentPlayer()
	m := Move{Origin: origin, Destination: destination}
	if !IsLegal(g.board, &m, mover) {
		return fmt.Errorf("%w: %s", ErrInvalidMove, m)
	}
	if m.Capture && !hasCaptureFrom(mover, m.Origin) {
		return fmt.Errorf("%w: no capture available from %s", ErrInvalidMove, m.Origin)
	}

	g.apply(m)
	return nil
}

func hasCaptureFrom(p *Player, origin Location) bool {
	for _, c := range p.captures {
		if c.Origin == origin {
			return true
		}
	}
	return false
}

// apply assumes m was validated against the live caches.
func (g *Game) apply(m Move) {
	mover := g.CurrentPlayer()
	pc := g.board.PieceAt(m.Origin)
	g.board.Place(m.Destination, pc)
	g.board.Clear(m.Origin)
	g.promote(pc)

	if m.Capture {
		g.capture(m)
		g.recompute(m)
		if len(mover.captures) > 0 {
			landing := m.Destination
			g.pending = &landing
			if mover.computer {
				g.activateComputerMove(&landing)
			}
			return
		}
	}

	g.pending = nil
	g.recomputeAll()
	if g.checkGameEnd() {
		return
	}
	g.turn = g.turn.Opponent()
}

func (g *Game) promote(pc *Piece) {
	if pc.Type != Regular || pc.Location.Row != PromotionRow(pc.Side, int(g.size)) {
		return
	}
	pc.Type = King
	g.players[pc.Side].kings++
}

func (g *Game) capture(m Move) {
	mid := m.Midpoint()
	victim := g.board.PieceAt(mid)
	if victim == nil {
		return
	}
	g.players[victim.Side].removePiece(victim)
	g.board.Clear(mid)
}

// recompute refreshes both move caches after last. When last was a
// capture the mover only sees further jumps of the capturing piece.
func (g *Game) recompute(last Move) {
	for _, p := range g.players {
		p.clearMoves()
		if p.side == g.turn && last.Capture {
			recomputeContinuation(g.board, p, last.Destination)
		} else {
			recomputeCaptures(g.board, p)
		}
		if len(p.captures) == 0 {
			recomputeSimple(g.board, p)
		}
	}
}

func (g *Game) recomputeAll() {
	for _, p := range g.players {
		p.clearMoves()
		recomputeCaptures(g.board, p)
		if len(p.captures) == 0 {
			recomputeSimple(g.board, p)
		}
	}
}

func (g *Game) checkGameEnd() bool {
	opp := g.OpponentPlayer()
	g.finished = len(opp.pieces) == 0 || (len(opp.moves) == 0 && len(opp.captures) == 0)
	if g.finished {
		g.endGame()
	}
	return g.finished
}

// EndGame closes the game from the point of view of the side to move.
// Called on a running game the side to move concedes. Called again on a
// finished game it re-runs the scoring branch, which may clear the winner.
func (g *Game) EndGame() {
	g.endGame()
}

func (g *Game) endGame() {
	mover, opp := g.CurrentPlayer(), g.OpponentPlayer()
	switch {
	case len(opp.pieces) == 0 || g.opponentBlocked():
		g.winner = mover
		mover.score += g.materialMargin()
	case !g.finished:
		g.winner = opp
		opp.score += g.materialMargin()
		g.finished = true
	default:
		g.winner = nil
	}
	g.pending = nil
}

func (g *Game) opponentBlocked() bool {
	return len(g.CurrentPlayer().moves) > 0 && len(g.OpponentPlayer().moves) == 0
}

func (g *Game) materialMargin() int {
	return abs(g.CurrentPlayer().material() - g.OpponentPlayer().material())
}
