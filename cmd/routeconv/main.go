// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/routeconv/routeconv/internal/cli"
)

func main() {
	// Create a cancellable context for watch and serve
	ctx, cancel := context.WithCancel(context.Background())

	// Handle graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		log.Info().Msgf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	code := cli.Execute(ctx)
	cancel()
	os.Exit(code)
}
