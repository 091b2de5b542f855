package model

import "sort"

// Offset is a cell position relative to a figure's own origin
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Figure is an immutable named shape: a set of cell offsets normalized
// so the minimum x and y are both 0. Two figures are equal iff their
// offset sets are equal, regardless of order.
type Figure struct {
	Name    string   `json:"name"`
	Offsets []Offset `json:"offsets"`
}

// NewFigure builds a figure from the given offsets, normalizing them
func NewFigure(name string, offsets []Offset) Figure {
	return Figure{Name: name, Offsets: normalize(offsets)}
}

// normalize shifts offsets so min x = 0 and min y = 0, dropping
// duplicates and producing a canonical sorted order
func normalize(offsets []Offset) []Offset {
	if len(offsets) == 0 {
		return nil
	}
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets[1:] {
		if o.X < minX {
			minX = o.X
		}
		if o.Y < minY {
			minY = o.Y
		}
	}
	seen := make(map[Offset]bool, len(offsets))
	out := make([]Offset, 0, len(offsets))
	for _, o := range offsets {
		shifted := Offset{X: o.X - minX, Y: o.Y - minY}
		if !seen[shifted] {
			seen[shifted] = true
			out = append(out, shifted)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Size returns the number of cells in the figure
func (f Figure) Size() int {
	return len(f.Offsets)
}

// Width returns the number of columns spanned by the figure
func (f Figure) Width() int {
	w := 0
	for _, o := range f.Offsets {
		if o.X+1 > w {
			w = o.X + 1
		}
	}
	return w
}

// Height returns the number of rows spanned by the figure
func (f Figure) Height() int {
	h := 0
	for _, o := range f.Offsets {
		if o.Y+1 > h {
			h = o.Y + 1
		}
	}
	return h
}

// Equal reports shape equality: same offset set, order irrelevant
func (f Figure) Equal(other Figure) bool {
	if len(f.Offsets) != len(other.Offsets) {
		return false
	}
	// Offsets are canonically sorted by construction
	for i := range f.Offsets {
		if f.Offsets[i] != other.Offsets[i] {
			return false
		}
	}
	return true
}

// CandidateShape is a figure placed at a board offset, carrying the
// uniform color of the cells it covers. Derived, never persisted.
type CandidateShape struct {
	Figure Figure `json:"figure"`
	Origin Cell   `json:"origin"`
	Color  Color  `json:"color"`
}

// Cells returns the board cells covered by the candidate
func (c CandidateShape) Cells() []Cell {
	cells := make([]Cell, len(c.Figure.Offsets))
	for i, o := range c.Figure.Offsets {
		cells[i] = Cell{X: c.Origin.X + o.X, Y: c.Origin.Y + o.Y}
	}
	return cells
}
