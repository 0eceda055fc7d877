// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/core"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rewrite rules in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tNAME\tDESCRIPTION")
			for _, r := range core.ListRules() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Order, r.Name, r.Description)
			}
			return tw.Flush()
		},
	}
}
