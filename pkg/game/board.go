package game

import (
	"fmt"
	"strings"
)

// Size is the side length of the Quixo grid.
const Size = 5

// Empty marks a cell that no player has taken yet.
const Empty int8 = -1

// PlayerID identifies one of the two players (0 moves first).
type PlayerID int

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID { return 1 - p }

func (p PlayerID) valid() bool { return p == 0 || p == 1 }

// Position is a grid coordinate: X is the column, Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// OnBorder reports whether p is one of the 16 perimeter cells.
func (p Position) OnBorder() bool {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return false
	}
	return p.X == 0 || p.X == Size-1 || p.Y == 0 || p.Y == Size-1
}

// BorderPositions lists the perimeter cells once each, walking the border
// clockwise from the top-left corner: top edge left to right, right edge top
// to bottom, bottom edge right to left, left edge bottom to top.
var BorderPositions = borderCycle()

func borderCycle() []Position {
	ps := make([]Position, 0, 4*(Size-1))
	for x := 0; x < Size; x++ {
		ps = append(ps, Position{X: x, Y: 0})
	}
	for y := 1; y < Size; y++ {
		ps = append(ps, Position{X: Size - 1, Y: y})
	}
	for x := Size - 2; x >= 0; x-- {
		ps = append(ps, Position{X: x, Y: Size - 1})
	}
	for y := Size - 2; y >= 1; y-- {
		ps = append(ps, Position{X: 0, Y: y})
	}
	return ps
}

// Board holds the cell marks indexed [row][col]. It is a value type:
// assigning a Board copies every cell.
type Board [Size][Size]int8

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	var b Board
	for y := range b {
		for x := range b[y] {
			b[y][x] = Empty
		}
	}
	return b
}

// At returns the mark stored at p.
func (b Board) At(p Position) int8 { return b[p.Y][p.X] }

// Owner returns the player owning p, if any.
func (b Board) Owner(p Position) (PlayerID, bool) {
	c := b[p.Y][p.X]
	if c == Empty {
		return 0, false
	}
	return PlayerID(c), true
}

// Set stamps p with player's mark.
func (b *Board) Set(p Position, player PlayerID) { b[p.Y][p.X] = int8(player) }

// Count returns how many cells carry player's mark.
func (b Board) Count(player PlayerID) int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] == int8(player) {
				n++
			}
		}
	}
	return n
}

// CanSlide reports whether a piece taken at p may be pushed back in at the
// end named by dir. Reinserting at the edge the piece came from is a no-op
// and therefore rejected.
func CanSlide(p Position, dir Direction) bool {
	if !p.OnBorder() {
		return false
	}
	switch dir {
	case Top:
		return p.Y != 0
	case Bottom:
		return p.Y != Size-1
	case Left:
		return p.X != 0
	case Right:
		return p.X != Size-1
	}
	return false
}

// Apply performs a take-and-slide for player and returns the resulting
// board. The receiver is never modified. ok is false when the move is
// illegal: p is not a border cell, p belongs to the opponent, or dir is not
// a valid slide for p.
func (b Board) Apply(p Position, dir Direction, player PlayerID) (next Board, ok bool) {
	if !player.valid() || !CanSlide(p, dir) {
		return b, false
	}
	if c := b.At(p); c != Empty && c != int8(player) {
		return b, false
	}
	piece := int8(player)
	switch dir {
	case Left:
		for i := p.X; i > 0; i-- {
			b[p.Y][i] = b[p.Y][i-1]
		}
		b[p.Y][0] = piece
	case Right:
		for i := p.X; i < Size-1; i++ {
			b[p.Y][i] = b[p.Y][i+1]
		}
		b[p.Y][Size-1] = piece
	case Top:
		for i := p.Y; i > 0; i-- {
			b[i][p.X] = b[i-1][p.X]
		}
		b[0][p.X] = piece
	case Bottom:
		for i := p.Y; i < Size-1; i++ {
			b[i][p.X] = b[i+1][p.X]
		}
		b[Size-1][p.X] = piece
	}
	return b, true
}

// Winner returns the owner of the first complete line found, scanning rows,
// then columns, then the main diagonal and the anti-diagonal.
func (b Board) Winner() (PlayerID, bool) {
	for y := 0; y < Size; y++ {
		if c, ok := b.line(func(i int) int8 { return b[y][i] }); ok {
			return c, true
		}
	}
	for x := 0; x < Size; x++ {
		if c, ok := b.line(func(i int) int8 { return b[i][x] }); ok {
			return c, true
		}
	}
	if c, ok := b.line(func(i int) int8 { return b[i][i] }); ok {
		return c, true
	}
	return b.line(func(i int) int8 { return b[i][Size-1-i] })
}

func (b Board) line(cell func(i int) int8) (PlayerID, bool) {
	first := cell(0)
	if first == Empty {
		return 0, false
	}
	for i := 1; i < Size; i++ {
		if cell(i) != first {
			return 0, false
		}
	}
	return PlayerID(first), true
}

// String renders the board with X for player 0, O for player 1 and . for
// empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for y := range b {
		for x := range b[y] {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cellSymbol(b[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellSymbol(c int8) string {
	switch c {
	case 0:
		return "X"
	case 1:
		return "O"
	default:
		return "."
	}
}

// ParseBoard reads the format produced by Board.String. Whitespace is
// ignored; exactly 25 symbols are expected.
func ParseBoard(s string) (Board, error) {
	b := NewBoard()
	i := 0
	for _, r := range s {
		var c int8
		switch r {
		case ' ', '\n', '\t', '\r':
			continue
		case 'X', 'x':
			c = 0
		case 'O', 'o':
			c = 1
		case '.':
			c = Empty
		default:
			return Board{}, fmt.Errorf("parse board: unexpected symbol %q", r)
		}
		if i >= Size*Size {
			return Board{}, fmt.Errorf("parse board: more than %d cells", Size*Size)
		}
		b[i/Size][i%Size] = c
		i++
	}
	if i != Size*Size {
		return Board{}, fmt.Errorf("parse board: got %d cells, want %d", i, Size*Size)
	}
	return b, nil
}
