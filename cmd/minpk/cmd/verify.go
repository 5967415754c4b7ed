package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCmd(c *cli) *cobra.Command {
	var sigHex, pkHex string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key and message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := decodeHex(sigHex)
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			pk, err := decodeHex(pkHex)
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			msg, err := message(cmd)
			if err != nil {
				return fmt.Errorf("message: %w", err)
			}

			err = c.verifier.CheckSignature(sig, pk, msg)
			if err != nil {
				c.log.Info("signature rejected", zap.Error(err))
			}
			return printResult(cmd, err == nil)
		},
	}
	cmd.Flags().StringVar(&sigHex, "sig", "", "96-byte compressed signature as hex")
	cmd.Flags().StringVar(&pkHex, "pk", "", "48-byte compressed public key as hex")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("pk")
	addMessageFlags(cmd)
	return cmd
}

func newVerifyAggregateCmd(c *cli) *cobra.Command {
	var sigHex string
	var pkHexes []string
	cmd := &cobra.Command{
		Use:   "verify-aggregate",
		Short: "Verify an aggregate signature against the signers' public keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := decodeHex(sigHex)
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			pks, err := decodeHexList(pkHexes)
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			msg, err := message(cmd)
			if err != nil {
				return fmt.Errorf("message: %w", err)
			}

			err = c.verifier.CheckAggregate(pks, msg, sig)
			if err != nil {
				c.log.Info("aggregate signature rejected",
					zap.Int("signers", len(pks)),
					zap.Error(err),
				)
			}
			return printResult(cmd, err == nil)
		},
	}
	cmd.Flags().StringVar(&sigHex, "sig", "", "96-byte compressed aggregate signature as hex")
	cmd.Flags().StringSliceVar(&pkHexes, "pk", nil, "signer public key as hex (repeatable)")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("pk")
	addMessageFlags(cmd)
	return cmd
}
