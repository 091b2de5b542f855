package model

// MoveCardCount is the number of movement cards in the shared pool
const MoveCardCount = 49

// MoveCard is a stateless movement card. Its allowed displacement
// vectors are derived deterministically from the id, so only the id is
// ever persisted.
type MoveCard struct {
	ID int `json:"id"`
}

// ValidMoveCardID reports whether id is a movement card id
func ValidMoveCardID(id int) bool {
	return id >= 1 && id <= MoveCardCount
}

// Class maps the card id onto one of the 7 distance classes
func (m MoveCard) Class() int {
	return (m.ID-1)%7 + 1
}

// distance-class displacement sets for classes 1-6. Class 7 is
// origin-dependent (edge wrap) and handled in Vectors.
var classVectors = map[int][]Offset{
	1: {{2, 2}, {-2, 2}, {2, -2}, {-2, -2}},
	2: {{2, 0}, {-2, 0}, {0, 2}, {0, -2}},
	3: {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	4: {{1, 1}, {-1, 1}, {1, -1}, {-1, -1}},
	5: {{-2, 1}, {2, -1}, {1, 2}, {-1, -2}},
	6: {{2, 1}, {-2, -1}, {-1, 2}, {1, -2}},
}

// Vectors returns the displacements the card permits from the given
// origin. For classes 1-6 these are fixed; class 7 wraps to the
// board's min/max coordinate along the origin's row and column.
func (m MoveCard) Vectors(origin Cell) []Offset {
	class := m.Class()
	if class != 7 {
		return classVectors[class]
	}
	edge := BoardSide - 1
	var out []Offset
	for _, d := range []Offset{
		{-origin.X, 0},
		{edge - origin.X, 0},
		{0, -origin.Y},
		{0, edge - origin.Y},
	} {
		if d.X != 0 || d.Y != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Allows reports whether the card permits swapping origin with dest.
// Both cells must lie on the board.
func (m MoveCard) Allows(origin, dest Cell) bool {
	if !cellOnBoard(origin) || !cellOnBoard(dest) {
		return false
	}
	dx, dy := dest.X-origin.X, dest.Y-origin.Y
	for _, v := range m.Vectors(origin) {
		if v.X == dx && v.Y == dy {
			return true
		}
	}
	return false
}

func cellOnBoard(c Cell) bool {
	return c.X >= 0 && c.X < BoardSide && c.Y >= 0 && c.Y < BoardSide
}
