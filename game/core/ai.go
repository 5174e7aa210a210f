package core

import "math"

// IllegalMoveScore is what ScoreMove reports for a move the game rejects.
const IllegalMoveScore = math.MinInt

const (
	promotionBonus = 50
	captureBonus   = 20
	exposedPenalty = 30
)

// ActivateComputerMove lets the AI pick and play a move for the side to
// move. A capture chain owned by a computer player is played out in full.
func (g *Game) ActivateComputerMove() (Move, error) {
	return g.activateComputerMove(nil)
}

// ActivateComputerMoveFrom restricts the AI to captures starting at from.
func (g *Game) ActivateComputerMoveFrom(from Location) (Move, error) {
	return g.activateComputerMove(&from)
}

func (g *Game) activateComputerMove(from *Location) (Move, error) {
	if g.finished {
		return Move{}, ErrGameFinished
	}
	m, ok := g.SelectBestMove(from)
	if !ok {
		return Move{}, ErrNoComputerMove
	}
	g.apply(m)
	return m, nil
}

// SelectBestMove returns the highest scoring cached move. Captures are
// mandatory; with from set only captures starting there are considered.
// Ties go to the earliest move in cache order.
func (g *Game) SelectBestMove(from *Location) (Move, bool) {
	mover := g.CurrentPlayer()
	if len(mover.captures) > 0 {
		candidates := mover.Captures()
		if from != nil {
			filtered := candidates[:0]
			for _, m := range candidates {
				if m.Origin == *from {
					filtered = append(filtered, m)
				}
			}
			candidates = filtered
		}
		return g.bestOf(candidates)
	}
	if from != nil {
		return Move{}, false
	}
	return g.bestOf(mover.Moves())
}

func (g *Game) bestOf(moves []Move) (Move, bool) {
	var best Move
	bestScore, found := 0, false
	for _, m := range moves {
		score := g.ScoreMove(m)
		if !found || score > bestScore {
			best, bestScore, found = m, score, true
		}
	}
	return best, found
}

// ScoreMove plays m on a clone of the game and rates the result for the
// side to move. The live game is never touched. Moves the game rejects
// score IllegalMoveScore.
func (g *Game) ScoreMove(m Move) int {
	sim := g.Clone()
	side := sim.turn

	probe := m
	IsLegal(sim.board, &probe, sim.players[side])
	if err := sim.ApplyMove(m.Origin, m.Destination); err != nil {
		return IllegalMoveScore
	}

	mover, opp := sim.players[side], sim.players[side.Opponent()]
	score := mover.score - opp.score
	if m.Destination.Row == PromotionRow(side, int(g.size)) {
		score += promotionBonus
	}
	if probe.Capture {
		score += captureBonus
	}
	for _, c := range opp.captures {
		if c.Destination == m.Destination {
			score -= exposedPenalty
			break
		}
	}
	return score
}
