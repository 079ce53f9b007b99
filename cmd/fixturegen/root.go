package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/config"
	"fixture-generator/internal/logging"
	"fixture-generator/internal/random"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg *config.Config

	seed      string
	logLevel  string
	logFormat string

	logger *slog.Logger
	types  *catalog.Catalog
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "fixturegen",
		Short:         "Generate randomized C++ declarations for serialization fixtures",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	defaultSeed := ""
	if cfg.Seed != nil {
		defaultSeed = strconv.FormatUint(*cfg.Seed, 10)
	}

	rootCmd.PersistentFlags().StringVar(&a.seed, "seed", defaultSeed, "seed for reproducible output (default: random)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", cfg.LogFormat, "log format: auto, text or json")

	rootCmd.AddCommand(
		newStructCmd(a),
		newEnumCmd(a),
		newValueCmd(a),
		newTypesCmd(a),
		newGenCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level, a.logFormat)
	if err != nil {
		return err
	}

	runID, err := logging.NewRunID()
	if err != nil {
		return err
	}

	a.logger = logger.With("run", runID)

	a.types, err = a.cfg.Catalog()
	if err != nil {
		return err
	}

	a.logger.Debug("starting", "command", cmd.Name(), "types", a.types.Len())

	return nil
}

// source returns the random source of the invocation. An explicit --seed
// wins over fallback, which wins over the configured seed.
func (a *app) source(cmd *cobra.Command, fallback *uint64) (random.Source, error) {
	text := a.seed
	if !cmd.Flags().Changed("seed") && fallback != nil {
		text = strconv.FormatUint(*fallback, 10)
	}

	if text == "" {
		return random.New(), nil
	}

	seed, err := config.ParseSeed(text)
	if err != nil {
		return nil, fmt.Errorf("--seed: %w", err)
	}

	a.logger.Debug("seeded", "seed", seed)

	return random.NewSeeded(seed), nil
}
