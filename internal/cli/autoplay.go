package cli

import (
	"github.com/spf13/cobra"
)

func newAutoplayCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "autoplay <id>",
		Short: "Let a bot play the player's current round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			req := map[string]string{"strategy": strategy}
			var result AutoplayResult

			if err := client.Post(playerPath(id)+"/autoplay", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "bisect", "Bot strategy: bisect, random")

	return cmd
}
