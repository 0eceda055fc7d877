// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package rewrite

import "strings"

// Finding is a source line the rules deliberately leave for a human
type Finding struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Text   string `json:"text"`
}

var reviewMarkers = []struct {
	marker string
	reason string
}{
	{"lastInsertRowid", "insert id must be read from a RETURNING clause"},
	{"db.transaction(", "transactions need a client from the pool"},
	{".prepare(", "prepared statement not matched by any rule"},
}

// ManualReview lists lines of text that still need hand conversion.
// Line numbers are 1-based; a line is reported once, for the first marker it contains.
func ManualReview(text string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(text, "\n") {
		for _, m := range reviewMarkers {
			if strings.Contains(line, m.marker) {
				findings = append(findings, Finding{
					Line:   i + 1,
					Reason: m.reason,
					Text:   strings.TrimSpace(line),
				})
				break
			}
		}
	}
	return findings
}
