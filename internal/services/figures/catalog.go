package figures

import "github.com/switchergame/switcher-go/internal/model"

// FigureCardCount is the size of the figure-card catalog
const FigureCardCount = 25

// ColorAny marks a figure usable on any single color; ColorBlue marks
// the four-cell figures that only match blue regions.
const (
	ColorAny  = 0
	ColorBlue = 1
)

// FigureCard is one catalog entry: a canonical shape plus its color
// constraint flag.
type FigureCard struct {
	ID     int          `json:"id"`
	Figure model.Figure `json:"figure"`
	Color  int          `json:"color"`
}

func fig(id int, name string, color int, offsets ...model.Offset) FigureCard {
	return FigureCard{ID: id, Figure: model.NewFigure(name, offsets), Color: color}
}

// catalog holds the 25 canonical figures, fixed at process start:
// ids 1-18 are the five-cell figures usable on any color, ids 19-25
// the four-cell figures reserved for blue matches.
var catalog = []FigureCard{
	fig(1, "fig01", ColorAny, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}),
	fig(2, "fig02", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 2, Y: 1}, model.Offset{X: 1, Y: 2}),
	fig(3, "fig03", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 3, Y: 0}, model.Offset{X: 4, Y: 0}),
	fig(4, "fig04", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 0, Y: 2}, model.Offset{X: 0, Y: 3}, model.Offset{X: 1, Y: 3}),
	fig(5, "fig05", ColorAny, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 1, Y: 3}, model.Offset{X: 0, Y: 3}),
	fig(6, "fig06", ColorAny, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 0, Y: 2}, model.Offset{X: 0, Y: 3}),
	fig(7, "fig07", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 1, Y: 3}),
	fig(8, "fig08", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 0, Y: 2}),
	fig(9, "fig09", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}),
	fig(10, "fig10", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 2, Y: 2}),
	fig(11, "fig11", ColorAny, model.Offset{X: 2, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 0, Y: 2}),
	fig(12, "fig12", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}),
	fig(13, "fig13", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 2, Y: 1}),
	fig(14, "fig14", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 0, Y: 2}, model.Offset{X: 1, Y: 2}, model.Offset{X: 2, Y: 2}),
	fig(15, "fig15", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 2, Y: 2}),
	fig(16, "fig16", ColorAny, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 2, Y: 1}, model.Offset{X: 1, Y: 2}),
	fig(17, "fig17", ColorAny, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 1, Y: 3}),
	fig(18, "fig18", ColorAny, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}, model.Offset{X: 0, Y: 2}, model.Offset{X: 0, Y: 3}),
	fig(19, "fig19", ColorBlue, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}),
	fig(20, "fig20", ColorBlue, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 3, Y: 0}),
	fig(21, "fig21", ColorBlue, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 1, Y: 1}),
	fig(22, "fig22", ColorBlue, model.Offset{X: 0, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 0, Y: 2}, model.Offset{X: 1, Y: 2}),
	fig(23, "fig23", ColorBlue, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 1, Y: 2}, model.Offset{X: 0, Y: 2}),
	fig(24, "fig24", ColorBlue, model.Offset{X: 1, Y: 0}, model.Offset{X: 2, Y: 0}, model.Offset{X: 0, Y: 1}, model.Offset{X: 1, Y: 1}),
	fig(25, "fig25", ColorBlue, model.Offset{X: 0, Y: 0}, model.Offset{X: 1, Y: 0}, model.Offset{X: 1, Y: 1}, model.Offset{X: 2, Y: 1}),
}

// Catalog returns the full figure-card catalog
func Catalog() []FigureCard {
	return catalog
}

// ByID returns the figure card with the given id
func ByID(id int) (FigureCard, bool) {
	if id < 1 || id > len(catalog) {
		return FigureCard{}, false
	}
	return catalog[id-1], true
}

// AllIDs returns every figure-card id, in catalog order
func AllIDs() []int {
	ids := make([]int, len(catalog))
	for i := range catalog {
		ids[i] = catalog[i].ID
	}
	return ids
}

// ValidID reports whether id names a catalog entry
func ValidID(id int) bool {
	return id >= 1 && id <= len(catalog)
}
