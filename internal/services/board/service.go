package board

import (
	"github.com/switchergame/switcher-go/internal/dependencies/random"
	"github.com/switchergame/switcher-go/internal/model"
)

// Service generates boards
type Service struct {
	random random.Random
}

// New creates a new board service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Generate builds a board of count cells with an equal share of each
// color, shuffled uniformly. count must be divisible by the number of
// colors.
func (s *Service) Generate(count int) (model.Board, error) {
	if count <= 0 || count%model.NumColors != 0 {
		return nil, model.ErrInvalidBoardSize
	}

	perColor := count / model.NumColors
	b := make(model.Board, 0, count)
	for c := model.ColorRed; c.IsValid(); c++ {
		for i := 0; i < perColor; i++ {
			b = append(b, c)
		}
	}

	// Fisher-Yates using the injected randomness source
	for i := len(b) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		b.Swap(i, j)
	}

	return b, nil
}

// GenerateDefault builds a standard 36-cell board
func (s *Service) GenerateDefault() (model.Board, error) {
	return s.Generate(model.BoardCells)
}
