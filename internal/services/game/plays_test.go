package game

import (
	"github.com/switchergame/switcher-go/internal/model"
)

// giveMoveCards puts the given movement cards straight into a player's
// hand, bypassing the deal path
func (s *ControllerSuite) giveMoveCards(gameID model.GameID, playerID model.PlayerID, cards ...int) {
	g, err := s.storage.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	g.PlayerInfo[playerID].HandMov = cards
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))
}

// Dealing

func (s *ControllerSuite) TestDealFigureHandDrawsFromPersonalPool() {
	g := s.startedGame("host", "p2")

	hand, err := s.controller.DealFigureHand(s.ctx, g.ID, "host")
	s.Require().NoError(err)
	s.Len(hand, model.HandSize)

	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Len(g.PlayerInfo["host"].RemainingFig, 25-model.HandSize)
	// The other player's pool is untouched
	s.Len(g.PlayerInfo["p2"].RemainingFig, 25)
}

func (s *ControllerSuite) TestDealFigureHandPublishesHand() {
	g := s.startedGame("host", "p2")
	s.publisher.Reset()

	hand, err := s.controller.DealFigureHand(s.ctx, g.ID, "host")
	s.Require().NoError(err)

	events := s.publisher.ByTopic(model.TopicFigureHand)
	s.Require().Len(events, 1)
	payload := events[0].Payload.(model.HandPayload)
	s.Equal(model.PlayerID("host"), payload.PlayerID)
	s.Equal(hand, payload.Cards)
}

func (s *ControllerSuite) TestDealMovementHandPurgesHeldCards() {
	g := s.startedGame("host", "p2")

	hand, err := s.controller.DealMovementHand(s.ctx, g.ID, "host")
	s.Require().NoError(err)
	s.Len(hand, model.HandSize)

	g, _ = s.controller.GetGame(s.ctx, g.ID)
	for _, id := range hand {
		s.NotContains(g.MovPool, id)
	}
}

func (s *ControllerSuite) TestDealForOutsiderFails() {
	g := s.startedGame("host", "p2")

	_, err := s.controller.DealFigureHand(s.ctx, g.ID, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotInGame)

	_, err = s.controller.DealMovementHand(s.ctx, g.ID, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotInGame)
}

// PlayMoveCard

func (s *ControllerSuite) TestPlayMoveCardSwapsCells() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 1, 2, 3)

	before := g.Board.Clone()
	// Card 1 allows diagonal jumps of two, (0,0) to (2,2)
	origin, dest := 0, 14
	s.Require().NoError(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, origin, dest))

	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Equal(before[origin], g.Board[dest])
	s.Equal(before[dest], g.Board[origin])
	s.Equal([]int{2, 3}, g.PlayerInfo[current].HandMov)

	s.Require().Len(g.History, 1)
	s.Equal(before, g.History[0].Board)
	s.Equal(1, g.History[0].CardID)
}

func (s *ControllerSuite) TestPlayMoveCardPublishesBoardAndHand() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 1)
	s.publisher.Reset()

	s.Require().NoError(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 0, 14))

	s.Len(s.publisher.ByTopic(model.TopicBoard), 1)
	hands := s.publisher.ByTopic(model.TopicMoveHand)
	s.Require().Len(hands, 1)
	s.Equal(current, hands[0].Payload.(model.HandPayload).PlayerID)
}

func (s *ControllerSuite) TestPlayMoveCardRejectsDisallowedDelta() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	// Card 3 only moves a single orthogonal step
	s.giveMoveCards(g.ID, current, 3)

	err := s.controller.PlayMoveCard(s.ctx, g.ID, current, 3, 0, 14)
	s.ErrorIs(err, model.ErrInvalidMove)

	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Empty(g.History)
	s.Equal([]int{3}, g.PlayerInfo[current].HandMov)
}

func (s *ControllerSuite) TestPlayMoveCardRejectsOutOfBoundsCell() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 1)

	s.ErrorIs(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, -1, 14), model.ErrInvalidMove)
	s.ErrorIs(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 0, 36), model.ErrInvalidMove)
}

func (s *ControllerSuite) TestPlayMoveCardNotInHandFails() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 2)

	s.ErrorIs(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 0, 14), model.ErrCardNotInHand)
}

func (s *ControllerSuite) TestPlayMoveCardOutOfTurnFails() {
	g := s.startedGame("host", "p2")
	waiting := turnOrder(g)[1]
	s.giveMoveCards(g.ID, waiting, 1)

	s.ErrorIs(s.controller.PlayMoveCard(s.ctx, g.ID, waiting, 1, 0, 14), model.ErrNotYourTurn)
}

func (s *ControllerSuite) TestPlayMoveCardBeforeStartFails() {
	g := s.newGame("host", "p2")
	s.giveMoveCards(g.ID, "host", 1)

	s.ErrorIs(s.controller.PlayMoveCard(s.ctx, g.ID, "host", 1, 0, 14), model.ErrGameNotStarted)
}

// UndoLastMove

func (s *ControllerSuite) TestUndoRestoresBoardAndHand() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 1, 2, 3)
	before := g.Board.Clone()

	s.Require().NoError(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 0, 14))
	s.Require().NoError(s.controller.UndoLastMove(s.ctx, g.ID, current))

	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Equal(before, g.Board)
	s.Empty(g.History)
	s.ElementsMatch([]int{1, 2, 3}, g.PlayerInfo[current].HandMov)
}

func (s *ControllerSuite) TestUndoChainUnwindsInOrder() {
	g := s.startedGame("host", "p2")
	current := turnOrder(g)[0]
	s.giveMoveCards(g.ID, current, 1, 1)
	before := g.Board.Clone()

	s.Require().NoError(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 0, 14))
	middle, _ := s.controller.GetGame(s.ctx, g.ID)
	afterFirst := middle.Board.Clone()
	s.Require().NoError(s.controller.PlayMoveCard(s.ctx, g.ID, current, 1, 1, 15))

	s.Require().NoError(s.controller.UndoLastMove(s.ctx, g.ID, current))
	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Equal(afterFirst, g.Board)

	s.Require().NoError(s.controller.UndoLastMove(s.ctx, g.ID, current))
	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Equal(before, g.Board)
}

func (s *ControllerSuite) TestUndoWithEmptyHistoryFails() {
	g := s.startedGame("host", "p2")
	s.ErrorIs(s.controller.UndoLastMove(s.ctx, g.ID, "host"), model.ErrNothingToUndo)
}

// Figure card handling

func (s *ControllerSuite) TestDiscardFigureCardClearsBlock() {
	g := s.startedGame("host", "p2")
	hand, err := s.controller.DealFigureHand(s.ctx, g.ID, "host")
	s.Require().NoError(err)
	target := hand[0]

	s.Require().NoError(s.controller.BlockFigureCard(s.ctx, g.ID, "host", target))
	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Require().NotNil(g.PlayerInfo["host"].BlockedCard)
	s.Equal(target, *g.PlayerInfo["host"].BlockedCard)

	s.Require().NoError(s.controller.DiscardFigureCard(s.ctx, g.ID, "host", target))
	g, _ = s.controller.GetGame(s.ctx, g.ID)
	s.Nil(g.PlayerInfo["host"].BlockedCard)
	s.NotContains(g.PlayerInfo["host"].HandFig, target)
}

func (s *ControllerSuite) TestBlockFigureCardRequiresHeldCard() {
	g := s.startedGame("host", "p2")
	s.ErrorIs(s.controller.BlockFigureCard(s.ctx, g.ID, "host", 7), model.ErrCardNotInHand)
}

func (s *ControllerSuite) TestDiscardFigureCardNotHeldFails() {
	g := s.startedGame("host", "p2")
	s.ErrorIs(s.controller.DiscardFigureCard(s.ctx, g.ID, "host", 7), model.ErrCardNotInHand)
}

// Chat

func (s *ControllerSuite) TestSendChatPublishesWithoutSaving() {
	g := s.startedGame("host", "p2")
	s.publisher.Reset()

	s.Require().NoError(s.controller.SendChat(s.ctx, g.ID, "p2", "hello"))

	events := s.publisher.ByTopic(model.TopicChat)
	s.Require().Len(events, 1)
	payload := events[0].Payload.(model.ChatPayload)
	s.Equal(model.PlayerID("p2"), payload.PlayerID)
	s.Equal("hello", payload.Text)
}

func (s *ControllerSuite) TestSendChatByOutsiderFails() {
	g := s.startedGame("host", "p2")
	s.ErrorIs(s.controller.SendChat(s.ctx, g.ID, "ghost", "hi"), model.ErrPlayerNotInGame)
}

// FindFigures

func (s *ControllerSuite) TestFindFiguresRequiresStartedGame() {
	g := s.newGame("host", "p2")
	_, err := s.controller.FindFigures(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameNotStarted)
}

func (s *ControllerSuite) TestFindFiguresReturnsUniformCandidates() {
	g := s.startedGame("host", "p2")

	candidates, err := s.controller.FindFigures(s.ctx, g.ID)
	s.Require().NoError(err)

	for _, c := range candidates {
		for _, cell := range c.Cells() {
			s.Equal(c.Color, g.Board.ColorAt(cell.Index()))
		}
	}
}
