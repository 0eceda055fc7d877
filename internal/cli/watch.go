// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/driver"
	"github.com/routeconv/routeconv/internal/watch"
)

func watchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	c := &cobra.Command{
		Use:   "watch",
		Short: "Re-print conversion progress every time the route file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("debounce") {
				debounce = opts.cfg.Debounce
			}

			out := cmd.OutOrStdout()
			report := func(ctx context.Context, path string) error {
				fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(time.TimeOnly), path)
				return driver.Report(ctx, path, out)
			}

			return watch.New(opts.cfg.TargetFile, debounce, report).Run(cmd.Context())
		},
	}

	c.Flags().DurationVar(&debounce, "debounce", 0, "Wait this long for writes to settle (env ROUTECONV_DEBOUNCE, default 500ms)")
	return c
}
