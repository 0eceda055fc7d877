// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package buildinfo holds version metadata stamped in with -ldflags
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("routeconv %s (commit=%s, date=%s)", Version, Commit, Date)
}
