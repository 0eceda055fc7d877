// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package cli implements the routeconv command line
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/config"
	"github.com/routeconv/routeconv/internal/driver"
	"github.com/routeconv/routeconv/internal/logger"
)

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context) int {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// options holds the persistent flags and the configuration resolved from them
type options struct {
	file      string
	envFile   string
	logLevel  string
	logFormat string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "routeconv",
		Short: "Track and automate the SQLite to PostgreSQL route conversion",
		Long: "Without a subcommand, prints how many Express routes in the target file\n" +
			"already use async handlers. The file is never modified unless\n" +
			"'routeconv rewrite --write' is run.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return driver.Run(cmd.Context(), opts.cfg.TargetFile, cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", config.DefaultTargetFile, "Route file to report on or rewrite (env "+config.EnvTargetFile+")")
	flags.StringVar(&opts.envFile, "env-file", "", "Load variables from this file (default .env when present)")
	flags.StringVar(&opts.logLevel, "log-level", string(logger.LogInfo), "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	flags.StringVar(&opts.logFormat, "log-format", logger.FormatConsole, "Log format: console or json (env "+config.EnvLogFormat+")")

	cmd.AddCommand(
		reportCmd(opts),
		rewriteCmd(opts),
		rulesCmd(),
		watchCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)

	return cmd
}

// load resolves configuration as flags over environment over env file over defaults
// and configures the global logger. Logs go to the command's stderr.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.TargetFile = o.file
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logger.LogLevel(strings.ToLower(o.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = strings.ToLower(o.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.Log.Output = cmd.ErrOrStderr()
	logger.Setup(cfg.Log)

	o.cfg = cfg
	return nil
}
