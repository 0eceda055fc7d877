// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package progress estimates how far a route file has been converted to
// async handlers. The estimate is a textual heuristic: a route counts as
// converted when the first (req, res handler signature after its
// registration call on the same line is preceded by "async ".
package progress

import (
	"fmt"
	"io"
	"regexp"
)

var (
	routeRe      = regexp.MustCompile(`app\.(get|post|put|delete)\([^,]+,.*?\(req, res`)
	asyncRouteRe = regexp.MustCompile(`app\.(get|post|put|delete)\([^,]+,.*?async \(req, res`)
)

// Progress holds route counts for one source text
type Progress struct {
	Total     int `json:"total"`
	Converted int `json:"converted"`
}

// Count scans source and returns the route totals
func Count(source string) Progress {
	return Progress{
		Total:     len(routeRe.FindAllStringIndex(source, -1)),
		Converted: len(asyncRouteRe.FindAllStringIndex(source, -1)),
	}
}

// Remaining returns the number of routes not yet converted
func (p Progress) Remaining() int {
	return p.Total - p.Converted
}

// Percent returns the converted share, floored to a whole percent.
// ok is false when there are no routes and the share is undefined.
func (p Progress) Percent() (percent int, ok bool) {
	if p.Total == 0 {
		return 0, false
	}
	return p.Converted * 100 / p.Total, true
}

// Done reports whether every counted route is converted
func (p Progress) Done() bool {
	return p.Total > 0 && p.Converted >= p.Total
}

// PercentString formats the percentage, or N/A when there are no routes
func (p Progress) PercentString() string {
	percent, ok := p.Percent()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", percent)
}

// WriteReport prints the counts in the fixed report format
func WriteReport(w io.Writer, p Progress) error {
	_, err := fmt.Fprintf(w,
		"Total routes: %d\nAsync routes: %d\nRemaining: %d\n\nProgress: %d/%d (%s)\n",
		p.Total, p.Converted, p.Remaining(), p.Converted, p.Total, p.PercentString())
	return err
}
