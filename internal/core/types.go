// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package core provides the core types used throughout routeconv
package core

import (
	"github.com/routeconv/routeconv/internal/progress"
	"github.com/routeconv/routeconv/internal/rewrite"
)

// ReportResult is the progress of one route file
type ReportResult struct {
	File      string `json:"file"`
	Total     int    `json:"total"`
	Converted int    `json:"converted"`
	Remaining int    `json:"remaining"`
	// Percent is nil when the file has no routes
	Percent *int   `json:"percent"`
	Display string `json:"display"`
}

// NewReportResult builds a ReportResult from route counts
func NewReportResult(file string, p progress.Progress) *ReportResult {
	result := &ReportResult{
		File:      file,
		Total:     p.Total,
		Converted: p.Converted,
		Remaining: p.Remaining(),
		Display:   p.PercentString(),
	}
	if percent, ok := p.Percent(); ok {
		result.Percent = &percent
	}
	return result
}

// RewriteOptions selects the input and the side effects of a rewrite
type RewriteOptions struct {
	// Path is the file to rewrite; ignored when Source is set
	Path string `json:"path,omitempty"`
	// Source is inline text to rewrite instead of a file
	Source string `json:"source,omitempty"`
	// Write replaces the file contents with the rewritten text
	Write bool `json:"write,omitempty"`
	// Diff renders a unified diff instead of returning the full text
	Diff bool `json:"diff,omitempty"`
}

// RewriteResult is the outcome of a rewrite
type RewriteResult struct {
	File          string            `json:"file,omitempty"`
	Changed       bool              `json:"changed"`
	Written       bool              `json:"written"`
	Substitutions int               `json:"substitutions"`
	Hits          []rewrite.RuleHit `json:"hits"`
	Review        []rewrite.Finding `json:"review,omitempty"`
	Diff          string            `json:"diff,omitempty"`
	Output        string            `json:"output,omitempty"`
	Before        *ReportResult     `json:"before"`
	After         *ReportResult     `json:"after"`
}

// RuleInfo describes one rewrite rule
type RuleInfo struct {
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListRules returns the rewrite rule table in application order
func ListRules() []RuleInfo {
	rules := rewrite.Rules()
	infos := make([]RuleInfo, 0, len(rules))
	for i, r := range rules {
		infos = append(infos, RuleInfo{Order: i + 1, Name: r.Name, Description: r.Description})
	}
	return infos
}
