// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	cliName        = "valueset"
	cliDescription = "Set algebra over points and intervals, and weighted bin merging."
)

type globalFlags struct {
	LogLevel string
	Dev      bool

	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lg, err := newLogger(g.LogLevel, g.Dev)
			if err != nil {
				return err
			}
			g.logger = lg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&g.Dev, "log-dev", false, "human readable console logs instead of JSON")

	cmd.AddCommand(
		newParseCommand(),
		newUnionCommand(),
		newDiffCommand(),
		newIntersectCommand(),
		newComplementCommand(),
		newContainsCommand(),
		newEqualCommand(),
		newCutsCommand(),
		newMergeCommand(g),
	)
	return cmd
}

// newLogger builds a zap logger writing to stderr, so that command output
// on stdout stays clean.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
