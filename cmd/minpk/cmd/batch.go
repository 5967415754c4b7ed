package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Batch is the YAML document read by the batch command.
type Batch struct {
	Certificates []Certificate `yaml:"certificates"`
}

// Certificate is one claim that a set of signers signed a message. Either an
// aggregate Signature or the individual Signatures to aggregate is given.
type Certificate struct {
	Name        string   `yaml:"name"`
	Message     string   `yaml:"message,omitempty"`
	MessageText string   `yaml:"message_text,omitempty"`
	Signature   string   `yaml:"signature,omitempty"`
	Signatures  []string `yaml:"signatures,omitempty"`
	PublicKeys  []string `yaml:"public_keys"`
}

type result struct {
	name string
	err  error
}

func LoadBatch(path string) (*Batch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch Batch
	if err := yaml.Unmarshal(b, &batch); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(batch.Certificates) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCertificates)
	}
	return &batch, nil
}

func newBatchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Verify every certificate in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := LoadBatch(args[0])
			if err != nil {
				return err
			}

			results := c.checkBatch(batch)
			invalid := 0
			for _, r := range results {
				if r.err != nil {
					invalid++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %v\n", r.name, r.err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", r.name)
			}
			c.log.Info("batch checked",
				zap.Int("certificates", len(results)),
				zap.Int("invalid", invalid),
			)
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d certificates", ErrInvalid, invalid, len(results))
			}
			return nil
		},
	}
}

// checkBatch verifies certificates concurrently. Results keep file order.
func (c *cli) checkBatch(batch *Batch) []result {
	results := make([]result, len(batch.Certificates))
	g := &errgroup.Group{}
	g.SetLimit(c.cfg.Concurrency)
	for i, cert := range batch.Certificates {
		name := cert.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		g.Go(func() error {
			results[i] = result{name: name, err: c.checkCertificate(cert)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (c *cli) checkCertificate(cert Certificate) error {
	if cert.Message != "" && cert.MessageText != "" {
		return ErrAmbiguousMessage
	}
	msg := []byte(cert.MessageText)
	if cert.Message != "" {
		b, err := decodeHex(cert.Message)
		if err != nil {
			return fmt.Errorf("message: %w", err)
		}
		msg = b
	}
	pks, err := decodeHexList(cert.PublicKeys)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}

	var sig []byte
	switch {
	case cert.Signature != "":
		if sig, err = decodeHex(cert.Signature); err != nil {
			return fmt.Errorf("signature: %w", err)
		}
	case len(cert.Signatures) > 0:
		sigs, err := decodeHexList(cert.Signatures)
		if err != nil {
			return fmt.Errorf("signature: %w", err)
		}
		if sig, err = c.verifier.AggregateSignatures(sigs); err != nil {
			return fmt.Errorf("%w: %w", ErrAggregationFailed, err)
		}
	default:
		return ErrMissingSignature
	}

	if len(pks) == 1 {
		return c.verifier.CheckSignature(sig, pks[0], msg)
	}
	return c.verifier.CheckAggregate(pks, msg, sig)
}
