// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/basket/mining"
	"github.com/tomtom215/basketlytics/internal/config"
	"github.com/tomtom215/basketlytics/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds state shared by every subcommand once the root pre-run completes.
type app struct {
	logLevel  string
	logFormat string
	engine    *analysis.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "basketctl",
		Short: "Mine frequent itemsets and association rules from transaction files",
		Long: `basketctl runs the Basketlytics analysis engine on a JSON request file
without starting the HTTP server. The request format is the same as the body
of POST /api/v1/analyze.

Analysis defaults (minimum support, confidence, algorithm, limits) are read
from the same config file and ANALYSIS_* environment variables as the server.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format (console, json)")

	cmd.AddCommand(analyzeCmd(a))
	cmd.AddCommand(dailyCmd(a))
	cmd.AddCommand(algorithmsCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup configures logging and builds the analysis engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logCfg := logging.DefaultConfig()
	logCfg.Level = a.logLevel
	logCfg.Format = a.logFormat
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine, err := analysis.NewEngine(cfg.ToAnalysisConfig(), logging.Logger())
	if err != nil {
		return fmt.Errorf("failed to initialize analysis engine: %w", err)
	}
	for _, miner := range mining.All() {
		engine.RegisterMiner(miner)
	}
	a.engine = engine
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// Skip the root pre-run; printing the version needs no engine.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "basketctl %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
