// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/core"
	"github.com/routeconv/routeconv/internal/driver"
)

func rewriteCmd(opts *options) *cobra.Command {
	var write, showDiff bool

	c := &cobra.Command{
		Use:   "rewrite",
		Short: "Apply the SQLite to PostgreSQL rewrite rules to the route file",
		Long: "Prints the rewritten file by default. --diff prints a unified diff instead,\n" +
			"--write replaces the file. Lines the rules cannot convert are logged as warnings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := driver.NewService(opts.cfg.TargetFile)
			result, err := svc.Rewrite(cmd.Context(), core.RewriteOptions{
				Write: write,
				Diff:  showDiff,
			})
			if err != nil {
				return err
			}

			for _, hit := range result.Hits {
				log.Debug().Str("rule", hit.Rule).Int("count", hit.Count).Msg("Rule applied")
			}
			for _, finding := range result.Review {
				log.Warn().
					Int("line", finding.Line).
					Str("text", finding.Text).
					Msg("Needs manual review: " + finding.Reason)
			}

			return printRewrite(cmd.OutOrStdout(), result, write, showDiff)
		},
	}

	c.Flags().BoolVarP(&write, "write", "w", false, "Replace the route file with the rewritten text")
	c.Flags().BoolVarP(&showDiff, "diff", "d", false, "Print a unified diff instead of the rewritten text")
	return c
}

func printRewrite(w io.Writer, result *core.RewriteResult, write, showDiff bool) error {
	if showDiff {
		if _, err := io.WriteString(w, result.Diff); err != nil {
			return err
		}
	} else if !write {
		_, err := io.WriteString(w, result.Output)
		return err
	}

	if !write {
		return nil
	}

	if !result.Written {
		_, err := fmt.Fprintf(w, "No changes to %s\n", result.File)
		return err
	}
	_, err := fmt.Fprintf(w, "Rewrote %s: %d substitutions, progress %d/%d (%s) -> %d/%d (%s)\n",
		result.File, result.Substitutions,
		result.Before.Converted, result.Before.Total, result.Before.Display,
		result.After.Converted, result.After.Total, result.After.Display)
	return err
}
