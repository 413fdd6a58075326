package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerScoreCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Get(playerPath(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPlayerScoreCmd() *cobra.Command {
	var score uint64

	cmd := &cobra.Command{
		Use:   "score <id>",
		Short: "Overwrite a player's score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			req := map[string]uint64{"score": score}
			var result Player

			if err := client.Put(playerPath(id)+"/score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&score, "score", 0, "New score (required)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Delete(playerPath(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func parsePlayerID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid player id %q", raw)
	}
	return id, nil
}

func playerPath(id uint64) string {
	return fmt.Sprintf("/api/v1/players/%d", id)
}
