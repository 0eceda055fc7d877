// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package rewrite converts synchronous SQLite route-handler code into awaited
// calls against the PostgreSQL helper (db.getOne, db.getAll, db.run).
//
// The conversion is plain regular-expression substitution over source text.
// Nothing is parsed: call expressions that span lines or contain nested
// parentheses are matched only up to the first closing parenthesis, and a
// construct that the rules only partly cover is left partly converted. The
// result always needs human review; lastInsertRowid handling and
// transactions are never attempted (see ManualReview).
package rewrite

// RuleHit records how many substitutions one rule made
type RuleHit struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// Result is the outcome of running every rule over a text block
type Result struct {
	Original  string    `json:"-"`
	Rewritten string    `json:"-"`
	Hits      []RuleHit `json:"hits"`
}

// Changed reports whether any rule altered the text
func (r Result) Changed() bool {
	return r.Original != r.Rewritten
}

// Substitutions returns the total number of substitutions across all rules
func (r Result) Substitutions() int {
	total := 0
	for _, h := range r.Hits {
		total += h.Count
	}
	return total
}

// Rewrite applies every rule, in order, to text and returns the converted text.
// It never fails; text without any trigger pattern is returned unchanged.
func Rewrite(text string) string {
	return Apply(text).Rewritten
}

// Apply is Rewrite that also reports per-rule substitution counts
func Apply(text string) Result {
	res := Result{
		Original: text,
		Hits:     make([]RuleHit, 0, len(rules)),
	}

	out := text
	for _, rule := range rules {
		var n int
		out, n = rule.Apply(out)
		res.Hits = append(res.Hits, RuleHit{Rule: rule.Name, Count: n})
	}
	res.Rewritten = out

	return res
}
