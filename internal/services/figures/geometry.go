package figures

import "github.com/switchergame/switcher-go/internal/model"

// Rotate applies k quarter-turn rotations to a figure. A single turn
// maps (x,y) to (-y,x) and the result is re-normalized, so rotation
// forms a cyclic group of order at most 4.
func Rotate(f model.Figure, k int) model.Figure {
	k = ((k % 4) + 4) % 4
	offsets := f.Offsets
	for i := 0; i < k; i++ {
		rotated := make([]model.Offset, len(offsets))
		for j, o := range offsets {
			rotated[j] = model.Offset{X: -o.Y, Y: o.X}
		}
		offsets = model.NewFigure(f.Name, rotated).Offsets
	}
	return model.Figure{Name: f.Name, Offsets: offsets}
}

// Rotations returns the distinct orientations of a figure, in rotation
// order starting from the figure itself. Symmetric figures yield fewer
// than four entries.
func Rotations(f model.Figure) []model.Figure {
	out := []model.Figure{Rotate(f, 0)}
	for k := 1; k < 4; k++ {
		r := Rotate(f, k)
		dup := false
		for _, seen := range out {
			if seen.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
