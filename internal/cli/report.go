// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/driver"
)

func reportCmd(opts *options) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "report",
		Short: "Print route conversion progress without the banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				return driver.Report(cmd.Context(), opts.cfg.TargetFile, cmd.OutOrStdout())
			}

			result, err := driver.NewService(opts.cfg.TargetFile).Report(cmd.Context(), "")
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return c
}
