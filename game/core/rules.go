package core

type Move struct {
	Origin      Location
	Destination Location
	// Capture is derived by IsLegal, never trusted from the caller.
	Capture bool
}

func (m Move) String() string {
	return m.Origin.String() + "-" + m.Destination.String()
}

// Midpoint is the square jumped over by a capture.
func (m Move) Midpoint() Location {
	return Location{
		Row:    (m.Origin.Row + m.Destination.Row) / 2,
		Column: (m.Origin.Column + m.Destination.Column) / 2,
	}
}

type direction struct {
	row, col int
}

var (
	upLeft    = direction{-1, -1}
	upRight   = direction{-1, 1}
	downLeft  = direction{1, -1}
	downRight = direction{1, 1}
)

// forward is the row step a Regular piece of the side advances by.
func forward(s Side) int {
	if s == First {
		return -1
	}
	return 1
}

// PromotionRow is the far rank for the side.
func PromotionRow(s Side, size int) int {
	if s == First {
		return 0
	}
	return size - 1
}

func directionsFor(p *Piece) []direction {
	switch {
	case p.Type == King:
		return []direction{upLeft, upRight, downLeft, downRight}
	case p.Side == First:
		return []direction{upLeft, upRight}
	default:
		return []direction{downLeft, downRight}
	}
}

// CandidateDestinations lists the squares at diagonal distance 1+offset
// the piece may reach. Offset 0 gives simple steps, offset 1 gives jumps.
// Off-board squares are included and left for IsLegal to reject.
func CandidateDestinations(p *Piece, offset int) []Location {
	dist := 1 + offset
	dirs := directionsFor(p)
	out := make([]Location, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, Location{
			Row:    p.Location.Row + d.row*dist,
			Column: p.Location.Column + d.col*dist,
		})
	}
	return out
}

// IsLegal validates m for player against the board and the player's cached
// capture list. A legal jump has m.Capture set as part of the check.
func IsLegal(b *Board, m *Move, player *Player) bool {
	m.Capture = false
	if !b.InBounds(m.Origin) || !b.InBounds(m.Destination) {
		return false
	}

	pc := b.PieceAt(m.Origin)
	if pc == nil || pc.Side != player.side || b.PieceAt(m.Destination) != nil {
		return false
	}

	colDelta := abs(m.Destination.Column - m.Origin.Column)
	var rowDelta int
	if pc.Type == King {
		rowDelta = abs(m.Destination.Row - m.Origin.Row)
	} else {
		rowDelta = (m.Destination.Row - m.Origin.Row) * forward(player.side)
	}
	if rowDelta != colDelta {
		return false
	}

	switch rowDelta {
	case 1:
		return len(player.captures) == 0
	case 2:
		victim := b.PieceAt(m.Midpoint())
		m.Capture = victim != nil && victim.Side != player.side
		return m.Capture
	}
	return false
}

func appendLegal(b *Board, player *Player, pc *Piece, offset int, dst []Move) []Move {
	for _, to := range CandidateDestinations(pc, offset) {
		m := Move{Origin: pc.Location, Destination: to}
		if IsLegal(b, &m, player) {
			dst = append(dst, m)
		}
	}
	return dst
}

// recomputeCaptures fills the capture list from every owned piece.
func recomputeCaptures(b *Board, player *Player) {
	for _, pc := range player.pieces {
		player.captures = appendLegal(b, player, pc, 1, player.captures)
	}
}

// recomputeContinuation only looks at the piece that just captured.
func recomputeContinuation(b *Board, player *Player, landing Location) {
	pc := b.PieceAt(landing)
	if pc == nil {
		return
	}
	player.captures = appendLegal(b, player, pc, 1, player.captures)
}

func recomputeSimple(b *Board, player *Player) {
	for _, pc := range player.pieces {
		player.moves = appendLegal(b, player, pc, 0, player.moves)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
