// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package diff renders rewrite previews as unified diffs
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of unchanged lines shown around each hunk
const DefaultContext = 3

// Unified returns a unified diff from before to after, labelled with name.
// Identical inputs produce an empty string.
func Unified(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  DefaultContext,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render diff for %s: %w", name, err)
	}
	return text, nil
}
