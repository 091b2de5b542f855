package figures

import "github.com/switchergame/switcher-go/internal/model"

// FindFigures scans the board for every placement of every input
// figure whose covered cells share a single color. Input figures are
// taken as-is: expand rotations with Rotations before calling if all
// orientations should be considered.
//
// Placement uses the strict bound ox+width < 6 (and likewise for
// height), so a figure never anchors against the board's final row or
// column. The bound is intentionally one tighter than the geometric
// limit; see the boundary tests before changing it.
//
// A placement only counts when it is a maximal silhouette: no
// 4-neighbor of a covered cell may share the shape's color, otherwise
// the match is a sub-region of a larger blob and is rejected.
func FindFigures(b model.Board, figs []model.Figure) []model.CandidateShape {
	var found []model.CandidateShape
	for _, f := range figs {
		w, h := f.Width(), f.Height()
		for oy := 0; oy+h < model.BoardSide; oy++ {
			for ox := 0; ox+w < model.BoardSide; ox++ {
				candidate, ok := placeAt(b, f, ox, oy)
				if ok && isMaximal(b, candidate) {
					found = append(found, candidate)
				}
			}
		}
	}
	return found
}

// SearchBoard finds every valid candidate for the full catalog across
// all orientations, honoring each card's color constraint.
func SearchBoard(b model.Board) []model.CandidateShape {
	var found []model.CandidateShape
	for _, card := range Catalog() {
		candidates := FindFigures(b, Rotations(card.Figure))
		for _, c := range candidates {
			if card.Color == ColorBlue && c.Color != model.ColorBlue {
				continue
			}
			found = append(found, c)
		}
	}
	return found
}

// placeAt checks whether the figure's cells at (ox,oy) share one color
func placeAt(b model.Board, f model.Figure, ox, oy int) (model.CandidateShape, bool) {
	color := b.At(ox+f.Offsets[0].X, oy+f.Offsets[0].Y)
	for _, o := range f.Offsets[1:] {
		if b.At(ox+o.X, oy+o.Y) != color {
			return model.CandidateShape{}, false
		}
	}
	return model.CandidateShape{
		Figure: f,
		Origin: model.Cell{X: ox, Y: oy},
		Color:  color,
	}, true
}

// isMaximal verifies that no edge cell of the candidate carries the
// candidate's color. The edge set is every in-board 4-neighbor of a
// covered cell that the shape does not itself cover.
func isMaximal(b model.Board, c model.CandidateShape) bool {
	covered := make(map[model.Cell]bool, len(c.Figure.Offsets))
	for _, cell := range c.Cells() {
		covered[cell] = true
	}
	for cell := range covered {
		for _, n := range neighbors(cell) {
			if covered[n] {
				continue
			}
			if b.At(n.X, n.Y) == c.Color {
				return false
			}
		}
	}
	return true
}

func neighbors(c model.Cell) []model.Cell {
	var out []model.Cell
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := model.Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if n.X >= 0 && n.X < model.BoardSide && n.Y >= 0 && n.Y < model.BoardSide {
			out = append(out, n)
		}
	}
	return out
}
