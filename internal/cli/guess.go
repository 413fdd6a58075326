package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <id> <number>",
		Short: "Submit a guess for a player's current round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}
			guess, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid guess %q", args[1])
			}

			req := map[string]uint64{"guess": guess}
			var result Player

			if err := client.Post(playerPath(id)+"/guess", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
