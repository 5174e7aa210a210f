package core

type BoardSize int

const (
	Small  BoardSize = 6
	Medium BoardSize = 8
	Large  BoardSize = 10
)

func (s BoardSize) Valid() bool {
	return s == Small || s == Medium || s == Large
}

type Side int

const (
	First Side = iota
	Second
)

func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == First {
		return "first"
	}
	return "second"
}

type PieceType int

const (
	Regular PieceType = iota
	King
)

type Location struct {
	Row, Column int
}

// Piece is owned by exactly one cell of the board. Location mirrors that
// cell and is only written through Board.Place.
type Piece struct {
	Side     Side
	Type     PieceType
	Location Location
}

type Cell struct {
	Location Location
	Piece    *Piece
}

func (c Cell) IsEmpty() bool {
	return c.Piece == nil
}

// Board is the single source of truth for occupancy.
type Board struct {
	size  int
	cells [][]Cell
}

func NewBoard(size BoardSize) *Board {
	n := int(size)
	b := &Board{size: n, cells: make([][]Cell, n)}
	for row := 0; row < n; row++ {
		b.cells[row] = make([]Cell, n)
		for col := 0; col < n; col++ {
			b.cells[row][col] = Cell{Location: Location{Row: row, Column: col}}
		}
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < b.size && l.Column >= 0 && l.Column < b.size
}

// PieceAt returns nil for empty or out-of-bounds locations.
func (b *Board) PieceAt(l Location) *Piece {
	if !b.InBounds(l) {
		return nil
	}
	return b.cells[l.Row][l.Column].Piece
}

func (b *Board) Place(l Location, p *Piece) {
	b.cells[l.Row][l.Column].Piece = p
	if p != nil {
		p.Location = l
	}
}

func (b *Board) Clear(l Location) {
	b.cells[l.Row][l.Column].Piece = nil
}

func (b *Board) Cell(l Location) Cell {
	return b.cells[l.Row][l.Column]
}

// Rows returns a copy of the grid. Pieces are shared with the board and
// must be treated as read-only.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.size)
	for row := range b.cells {
		out[row] = append([]Cell(nil), b.cells[row]...)
	}
	return out
}

func (b *Board) reset() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col].Piece = nil
		}
	}
}

// IsDark reports whether a square belongs to the playable color class.
func IsDark(l Location) bool {
	return (l.Row+l.Column)%2 != 0
}
