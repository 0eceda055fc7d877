// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/routeconv/routeconv/internal/driver"
	"github.com/routeconv/routeconv/internal/server"
)

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.NewServer(driver.NewService(opts.cfg.TargetFile))
			if err != nil {
				return err
			}

			if err := srv.Start(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}

			<-srv.Done()
			return srv.Err()
		},
	}
}
