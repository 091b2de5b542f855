package model

// BoardSide is the dimension of the square board
const BoardSide = 6

// BoardCells is the total number of cells on the board
const BoardCells = BoardSide * BoardSide

// Cell identifies a board position by coordinates
type Cell struct {
	X int `json:"x"` // 0-indexed column
	Y int `json:"y"` // 0-indexed row
}

// Index returns the row-major board index for the cell
func (c Cell) Index() int {
	return c.X + c.Y*BoardSide
}

// CellAt converts a row-major index back to coordinates
func CellAt(index int) Cell {
	return Cell{X: index % BoardSide, Y: index / BoardSide}
}

// Board is the shared 6x6 grid of colored tiles, stored row-major
// (index = x + y*6)
type Board []Color

// ColorAt returns the color at the given row-major index
func (b Board) ColorAt(index int) Color {
	return b[index]
}

// At returns the color at the given cell coordinates
func (b Board) At(x, y int) Color {
	return b[x+y*BoardSide]
}

// Swap exchanges the colors of two cells by index
func (b Board) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

// InBounds returns true if the index addresses a cell on the board
func (b Board) InBounds(index int) bool {
	return index >= 0 && index < len(b)
}

// Clone returns an independent copy of the board
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// AsList returns the ordered sequence of colors
func (b Board) AsList() []Color {
	return []Color(b)
}
