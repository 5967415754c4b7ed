package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newAggregateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate SIG_HEX...",
		Short: "Aggregate signatures into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigs, err := decodeHexList(args)
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			agg, err := c.verifier.AggregateSignatures(sigs)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAggregationFailed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(agg))
			return nil
		},
	}
}
