package game

import (
	"context"
	"log/slog"

	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/figures"
)

// DealFigureHand tops up a player's figure hand from their personal
// pool and returns the resulting hand
func (c *Controller) DealFigureHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]int, error) {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	info, ok := g.PlayerInfo[playerID]
	if !ok {
		return nil, model.ErrPlayerNotInGame
	}

	c.cards.FillFigureHand(info)
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.publisher.Publish(model.TopicFigureHand, g.ID, model.HandPayload{
		PlayerID: playerID,
		Cards:    info.HandFig,
	})

	return info.HandFig, nil
}

// DealMovementHand tops up a player's movement hand from the shared
// pool and returns the resulting hand
func (c *Controller) DealMovementHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]int, error) {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	info, ok := g.PlayerInfo[playerID]
	if !ok {
		return nil, model.ErrPlayerNotInGame
	}

	c.cards.DealMovement(g, info)
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.publisher.Publish(model.TopicMoveHand, g.ID, model.HandPayload{
		PlayerID: playerID,
		Cards:    info.HandMov,
	})

	return info.HandMov, nil
}

// PlayMoveCard plays a movement card: swaps the origin and destination
// cells, spends the card and records the play for undo
func (c *Controller) PlayMoveCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cardID, origin, dest int) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	info, ok := g.PlayerInfo[playerID]
	if !ok {
		return model.ErrPlayerNotInGame
	}
	if !g.Started {
		return model.ErrGameNotStarted
	}
	if g.CurrentPlayer() != playerID {
		return model.ErrNotYourTurn
	}
	if !info.HasMoveCard(cardID) {
		return model.ErrCardNotInHand
	}
	if !model.ValidMoveCardID(cardID) || !g.Board.InBounds(origin) || !g.Board.InBounds(dest) {
		return model.ErrInvalidMove
	}

	card := model.MoveCard{ID: cardID}
	if !card.Allows(model.CellAt(origin), model.CellAt(dest)) {
		return model.ErrInvalidMove
	}

	// Validation is done: snapshot, then mutate
	g.History = append(g.History, model.PlayEntry{
		Board:    g.Board.Clone(),
		PlayerID: playerID,
		CardID:   cardID,
		Origin:   origin,
		Dest:     dest,
	})
	g.Board.Swap(origin, dest)
	if err := c.cards.SpendMovement(info, cardID); err != nil {
		return err
	}
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.logger.Info("movement played",
		slog.String("game_id", string(g.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("card_id", cardID),
		slog.Int("origin", origin),
		slog.Int("dest", dest),
	)

	c.publisher.Publish(model.TopicBoard, g.ID, model.BoardPayload{Board: g.Board.AsList()})
	c.publisher.Publish(model.TopicMoveHand, g.ID, model.HandPayload{
		PlayerID: playerID,
		Cards:    info.HandMov,
	})

	return nil
}

// UndoLastMove reverts the most recent play: the board returns to its
// pre-move snapshot and the spent card returns to the acting player's
// hand
func (c *Controller) UndoLastMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if !g.HasPlayer(playerID) {
		return model.ErrPlayerNotInGame
	}
	if len(g.History) == 0 {
		return model.ErrNothingToUndo
	}

	entry := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]
	g.Board = entry.Board

	actor := g.PlayerInfo[entry.PlayerID]
	if actor != nil {
		actor.HandMov = append(actor.HandMov, entry.CardID)
	}
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.publisher.Publish(model.TopicBoard, g.ID, model.BoardPayload{Board: g.Board.AsList()})
	if actor != nil {
		c.publisher.Publish(model.TopicMoveHand, g.ID, model.HandPayload{
			PlayerID: entry.PlayerID,
			Cards:    actor.HandMov,
		})
	}

	return nil
}

// DiscardFigureCard removes a figure card from a player's hand
func (c *Controller) DiscardFigureCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cardID int) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	info, ok := g.PlayerInfo[playerID]
	if !ok {
		return model.ErrPlayerNotInGame
	}

	if err := c.cards.DiscardFigure(info, cardID); err != nil {
		return err
	}
	if info.BlockedCard != nil && *info.BlockedCard == cardID {
		info.BlockedCard = nil
	}
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.publisher.Publish(model.TopicFigureHand, g.ID, model.HandPayload{
		PlayerID: playerID,
		Cards:    info.HandFig,
	})

	return nil
}

// BlockFigureCard locks one of the target player's held figure cards
func (c *Controller) BlockFigureCard(ctx context.Context, gameID model.GameID, targetID model.PlayerID, cardID int) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	info, ok := g.PlayerInfo[targetID]
	if !ok {
		return model.ErrPlayerNotInGame
	}
	if !info.HasFigureCard(cardID) {
		return model.ErrCardNotInHand
	}

	info.BlockedCard = &cardID
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.publisher.Publish(model.TopicFigureHand, g.ID, model.HandPayload{
		PlayerID: targetID,
		Cards:    info.HandFig,
	})

	return nil
}

// SendChat relays a chat line to the game's chat topic
func (c *Controller) SendChat(ctx context.Context, gameID model.GameID, playerID model.PlayerID, text string) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if !g.HasPlayer(playerID) {
		return model.ErrPlayerNotInGame
	}

	c.publisher.Publish(model.TopicChat, g.ID, model.ChatPayload{
		PlayerID: playerID,
		Text:     text,
	})
	return nil
}

// FindFigures returns every valid candidate shape on the game's
// current board
func (c *Controller) FindFigures(ctx context.Context, gameID model.GameID) ([]model.CandidateShape, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !g.Started {
		return nil, model.ErrGameNotStarted
	}
	return figures.SearchBoard(g.Board), nil
}
