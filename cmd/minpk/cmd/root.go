package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Iscaraca/minpk"
	"github.com/Iscaraca/minpk/internal/curve"
)

type cli struct {
	configPath  string
	logLevel    string
	engine      string
	concurrency int

	cfg       Config
	log       *zap.Logger
	verifier  *minpk.Verifier
	newLogger func(level string) (*zap.Logger, error)
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli{newLogger: newLogger})
}

// Execute runs the command line in os.Args and flushes the logger whether or
// not the command failed.
func Execute() error {
	c := &cli{newLogger: newLogger}
	return c.execute(newRootCmd(c))
}

func (c *cli) execute(cmd *cobra.Command) error {
	defer c.sync()
	return cmd.Execute()
}

func (c *cli) sync() {
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minpk",
		Short: "Verify and aggregate BLS12-381 min_pk signatures",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&c.engine, "engine", "", fmt.Sprintf("curve engine %v", curve.Engines()))
	cmd.PersistentFlags().IntVar(&c.concurrency, "concurrency", 0, "certificates checked in parallel by batch")

	cmd.AddCommand(
		newVerifyCmd(c),
		newAggregateCmd(c),
		newVerifyAggregateCmd(c),
		newBatchCmd(c),
	)
	return cmd
}

func (c *cli) init(cmd *cobra.Command) error {
	c.cfg = DefaultConfig()
	if c.configPath != "" {
		cfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.cfg.LogLevel = c.logLevel
	}
	if flags.Changed("engine") {
		c.cfg.Engine = c.engine
	}
	if flags.Changed("concurrency") {
		c.cfg.Concurrency = c.concurrency
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	log, err := c.newLogger(c.cfg.LogLevel)
	if err != nil {
		return err
	}
	engine, err := curve.ByName(c.cfg.Engine)
	if err != nil {
		return err
	}

	c.log = log
	c.verifier = minpk.NewVerifier(
		minpk.WithEngine(engine),
		minpk.WithLogger(log.Named("minpk")),
	)
	c.log.Debug("initialized",
		zap.String("engine", engine.Name()),
		zap.Int("concurrency", c.cfg.Concurrency),
	)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// decodeHex accepts an optional 0x prefix.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	return hex.DecodeString(s)
}

func decodeHexList(ss []string) ([][]byte, error) {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		b, err := decodeHex(s)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// message reads --msg (hex) or --msg-text (raw string).
func message(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed("msg-text") {
		text, err := cmd.Flags().GetString("msg-text")
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}
	s, err := cmd.Flags().GetString("msg")
	if err != nil {
		return nil, err
	}
	return decodeHex(s)
}

func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().String("msg", "", "message as hex")
	cmd.Flags().String("msg-text", "", "message as a raw string")
	cmd.MarkFlagsMutuallyExclusive("msg", "msg-text")
	cmd.MarkFlagsOneRequired("msg", "msg-text")
}

func printResult(cmd *cobra.Command, ok bool) error {
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "invalid")
	return ErrInvalid
}
