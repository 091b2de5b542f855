package cards

import (
	"github.com/switchergame/switcher-go/internal/dependencies/random"
	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/figures"
)

// Service implements the dealing and discard rules for both card
// kinds: the per-player figure pools and the game-wide shared
// movement pool.
type Service struct {
	random random.Random
}

// New creates a new card service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// NewFigurePool returns a fresh personal pool holding all 25 figure ids
func NewFigurePool() []int {
	return figures.AllIDs()
}

// NewMovementPool returns a fresh shared pool holding all 49 movement ids
func NewMovementPool() []int {
	pool := make([]int, model.MoveCardCount)
	for i := range pool {
		pool[i] = i + 1
	}
	return pool
}

// FillFigureHand draws random ids from the player's personal pool
// into their hand until the hand holds 3 cards or the pool runs dry.
// Draws remove from the pool, so a card is dealt at most once per
// player per game. Never fails; exhaustion is a no-op.
func (s *Service) FillFigureHand(info *model.PlayerInfo) {
	for len(info.HandFig) < model.HandSize && len(info.RemainingFig) > 0 {
		i := s.random.Intn(len(info.RemainingFig))
		info.HandFig = append(info.HandFig, info.RemainingFig[i])
		info.RemainingFig = append(info.RemainingFig[:i], info.RemainingFig[i+1:]...)
	}
}

// DiscardFigure removes one occurrence of cardID from the player's
// figure hand
func (s *Service) DiscardFigure(info *model.PlayerInfo, cardID int) error {
	for i, id := range info.HandFig {
		if id == cardID {
			info.HandFig = append(info.HandFig[:i], info.HandFig[i+1:]...)
			return nil
		}
	}
	return model.ErrCardNotInHand
}

// DealMovement tops up the player's movement hand to 3 cards from the
// game's shared pool. Draws sample the pool with replacement, so the
// same id can be chosen twice in one deal; afterwards every id held
// anywhere in the player's hand is purged from the pool, so no card
// currently held by anyone is ever reissued.
func (s *Service) DealMovement(g *model.Game, info *model.PlayerInfo) {
	for len(info.HandMov) < model.HandSize && len(g.MovPool) > 0 {
		info.HandMov = append(info.HandMov, g.MovPool[s.random.Intn(len(g.MovPool))])
	}

	held := make(map[int]bool, len(info.HandMov))
	for _, id := range info.HandMov {
		held[id] = true
	}
	kept := g.MovPool[:0]
	for _, id := range g.MovPool {
		if !held[id] {
			kept = append(kept, id)
		}
	}
	g.MovPool = kept
}

// SpendMovement removes one occurrence of cardID from the player's
// movement hand
func (s *Service) SpendMovement(info *model.PlayerInfo, cardID int) error {
	for i, id := range info.HandMov {
		if id == cardID {
			info.HandMov = append(info.HandMov[:i], info.HandMov[i+1:]...)
			return nil
		}
	}
	return model.ErrCardNotInHand
}
