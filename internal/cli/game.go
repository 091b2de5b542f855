package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameAdvanceCmd())
	cmd.AddCommand(newGameExitCmd())
	cmd.AddCommand(newGameDealCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameUndoCmd())
	cmd.AddCommand(newGameDiscardCmd())
	cmd.AddCommand(newGameBlockCmd())
	cmd.AddCommand(newGameFiguresCmd())
	cmd.AddCommand(newGameChatCmd())

	return cmd
}

// requirePlayerID resolves the acting player or errors
func requirePlayerID() (string, error) {
	if cfg.PlayerID == "" {
		return "", fmt.Errorf("no player id: run 'player guest' or set --player")
	}
	return cfg.PlayerID, nil
}

func printGameResult(result Game) {
	NewOutput(cfg.Output).Print(result)
}

func newGameCreateCmd() *cobra.Command {
	var name string
	var minPlayers, maxPlayers int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game hosted by the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id":   playerID,
				"name":        name,
				"min_players": minPlayers,
				"max_players": maxPlayers,
			}
			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().IntVar(&minPlayers, "min", 2, "Minimum players")
	cmd.Flags().IntVar(&maxPlayers, "max", 4, "Maximum players")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

// playerActionCmd builds a command that posts the acting player to a
// game subpath
func playerActionCmd(use, short, subpath string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": playerID}
			var result Game
			if err := client.Post("/api/v1/games/"+args[0]+subpath, req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return playerActionCmd("join <id>", "Join a game", "/join")
}

func newGameStartCmd() *cobra.Command {
	return playerActionCmd("start <id>", "Start a game (host only)", "/start")
}

func newGameAdvanceCmd() *cobra.Command {
	return playerActionCmd("advance <id>", "End the current turn", "/advance")
}

func newGameExitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exit <id>",
		Short: "Leave a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": playerID}
			var result ExitResult
			if err := client.Post("/api/v1/games/"+args[0]+"/exit", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameDealCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "deal <id>",
		Short: "Top up a hand from the figure or movement pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			var subpath string
			switch kind {
			case "figures":
				subpath = "/figures/deal"
			case "movements":
				subpath = "/movements/deal"
			default:
				return fmt.Errorf("--kind must be 'figures' or 'movements'")
			}

			req := map[string]string{"player_id": playerID}
			var result Hand
			if err := client.Post("/api/v1/games/"+args[0]+subpath, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "movements", "Card kind: figures, movements")

	return cmd
}

func newGamePlayCmd() *cobra.Command {
	var cardID, origin, dest int

	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Play a movement card, swapping two cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id": playerID,
				"card_id":   cardID,
				"origin":    origin,
				"dest":      dest,
			}
			var result Game
			if err := client.Post("/api/v1/games/"+args[0]+"/moves", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&cardID, "card", 0, "Movement card id (required)")
	cmd.Flags().IntVar(&origin, "origin", 0, "Origin cell index, row-major")
	cmd.Flags().IntVar(&dest, "dest", 0, "Destination cell index, row-major")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func newGameUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo the most recent move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": playerID}
			var result Game
			if err := client.Delete("/api/v1/games/"+args[0]+"/moves", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameDiscardCmd() *cobra.Command {
	var cardID int

	cmd := &cobra.Command{
		Use:   "discard <id>",
		Short: "Discard a figure card from your hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{"player_id": playerID, "card_id": cardID}
			if err := client.Post("/api/v1/games/"+args[0]+"/figures/discard", req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Card discarded")
			return nil
		},
	}

	cmd.Flags().IntVar(&cardID, "card", 0, "Figure card id (required)")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func newGameBlockCmd() *cobra.Command {
	var targetID string
	var cardID int

	cmd := &cobra.Command{
		Use:   "block <id>",
		Short: "Block a figure card held by another player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"target_id": targetID, "card_id": cardID}
			if err := client.Post("/api/v1/games/"+args[0]+"/figures/block", req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Card blocked")
			return nil
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "Target player id (required)")
	cmd.Flags().IntVar(&cardID, "card", 0, "Figure card id (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func newGameFiguresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "figures <id>",
		Short: "List valid figure placements on the current board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Figures
			if err := client.Get("/api/v1/games/"+args[0]+"/board/figures", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <id> <text>",
		Short: "Send a chat line to the game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": playerID, "text": args[1]}
			if err := client.Post("/api/v1/games/"+args[0]+"/chat", req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Sent")
			return nil
		},
	}
}
