// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule names, in application order
const (
	RuleAsyncArrowHandlers    = "async_arrow_handlers"
	RuleAsyncFunctionHandlers = "async_function_handlers"
	RuleSingleRowQuery        = "single_row_query"
	RuleMultiRowQuery         = "multi_row_query"
	RuleBoundMutation         = "bound_mutation"
	RuleInlineMutation        = "inline_mutation"
	RuleRowCountField         = "row_count_field"
)

const (
	changesField  = "result.changes"
	rowCountField = "result.rowCount"
)

var (
	// (req, res) => / (req, res, next) =>
	arrowHandlerRe = regexp.MustCompile(`\((req, res(?:, next)?)\)\s*=>`)
	// function (req, res) / function(req, res, next)
	functionHandlerRe = regexp.MustCompile(`function\s*\((req, res(?:, next)?)\)`)

	singleRowRe = regexp.MustCompile(`db\.prepare\(([^)]+)\)\.get\(([^)]*)\)`)
	multiRowRe  = regexp.MustCompile(`db\.prepare\(([^)]+)\)\.all\(([^)]*)\)`)
	// RE2 has no backreferences: groups 1 and 3 must be compared by hand.
	boundMutationRe  = regexp.MustCompile(`const\s+(\w+)\s*=\s*db\.prepare\(([^)]+)\);\s*(\w+)\.run\(([^)]*)\)`)
	inlineMutationRe = regexp.MustCompile(`db\.prepare\(([^)]+)\)\.run\(([^)]*)\)`)
)

// Rule is a single ordered text substitution
type Rule struct {
	// Name is the stable identifier of the rule
	Name string
	// Description says what the rule rewrites
	Description string

	apply func(text string) (string, int)
}

// Apply runs the rule over text and returns the new text and the number of substitutions made
func (r Rule) Apply(text string) (string, int) {
	return r.apply(text)
}

var rules = []Rule{
	{
		Name:        RuleAsyncArrowHandlers,
		Description: "(req, res) => and (req, res, next) => become async arrow functions",
		apply:       asyncArrowHandlers,
	},
	{
		Name:        RuleAsyncFunctionHandlers,
		Description: "function (req, res[, next]) becomes async function",
		apply:       asyncFunctionHandlers,
	},
	{
		Name:        RuleSingleRowQuery,
		Description: "db.prepare(A).get(B) becomes await db.getOne(A, [B])",
		apply:       singleRowQuery,
	},
	{
		Name:        RuleMultiRowQuery,
		Description: "db.prepare(A).all(B) becomes await db.getAll(A, [B])",
		apply:       multiRowQuery,
	},
	{
		Name:        RuleBoundMutation,
		Description: "const s = db.prepare(A); s.run(B) becomes await db.run(A, [B])",
		apply:       boundMutation,
	},
	{
		Name:        RuleInlineMutation,
		Description: "db.prepare(A).run(B) becomes await db.run(A, [B])",
		apply:       inlineMutation,
	},
	{
		Name:        RuleRowCountField,
		Description: "result.changes becomes result.rowCount",
		apply:       rowCount,
	},
}

// Rules returns the rule table in application order
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// AsyncArrowHandlers marks (req, res) and (req, res, next) arrow functions async.
// Parameter lists already preceded by async are left alone.
func AsyncArrowHandlers(text string) string {
	out, _ := asyncArrowHandlers(text)
	return out
}

// AsyncFunctionHandlers marks function (req, res[, next]) declarations async.
func AsyncFunctionHandlers(text string) string {
	out, _ := asyncFunctionHandlers(text)
	return out
}

// SingleRowQuery rewrites db.prepare(A).get(B) to await db.getOne(A, [B]).
// A and B end at the first closing parenthesis.
func SingleRowQuery(text string) string {
	out, _ := singleRowQuery(text)
	return out
}

// MultiRowQuery rewrites db.prepare(A).all(B) to await db.getAll(A, [B]).
func MultiRowQuery(text string) string {
	out, _ := multiRowQuery(text)
	return out
}

// BoundMutation collapses const s = db.prepare(A); s.run(B) into await db.run(A, [B]).
// The statement binding is dropped; a .run on any other identifier is not touched.
func BoundMutation(text string) string {
	out, _ := boundMutation(text)
	return out
}

// InlineMutation rewrites db.prepare(A).run(B) to await db.run(A, [B]).
func InlineMutation(text string) string {
	out, _ := inlineMutation(text)
	return out
}

// RowCountField renames result.changes to result.rowCount.
func RowCountField(text string) string {
	out, _ := rowCount(text)
	return out
}

func asyncArrowHandlers(text string) (string, int) {
	return substitute(arrowHandlerRe, text, func(text string, m []int) (string, bool) {
		if precededByAsync(text, m[0]) {
			return "", false
		}
		return "async (" + text[m[2]:m[3]] + ") =>", true
	})
}

func asyncFunctionHandlers(text string) (string, int) {
	return substitute(functionHandlerRe, text, func(text string, m []int) (string, bool) {
		if precededByAsync(text, m[0]) {
			return "", false
		}
		return "async function (" + text[m[2]:m[3]] + ")", true
	})
}

func singleRowQuery(text string) (string, int) {
	return substitute(singleRowRe, text, template(singleRowRe, "await db.getOne(${1}, [${2}])"))
}

func multiRowQuery(text string) (string, int) {
	return substitute(multiRowRe, text, template(multiRowRe, "await db.getAll(${1}, [${2}])"))
}

func boundMutation(text string) (string, int) {
	expand := template(boundMutationRe, "await db.run(${2}, [${4}])")
	return substitute(boundMutationRe, text, func(text string, m []int) (string, bool) {
		if text[m[2]:m[3]] != text[m[6]:m[7]] {
			return "", false
		}
		return expand(text, m)
	})
}

func inlineMutation(text string) (string, int) {
	return substitute(inlineMutationRe, text, template(inlineMutationRe, "await db.run(${1}, [${2}])"))
}

func rowCount(text string) (string, int) {
	n := strings.Count(text, changesField)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, changesField, rowCountField), n
}

type expandFunc func(text string, m []int) (string, bool)

// template returns an expandFunc for a replacement template over re's groups
func template(re *regexp.Regexp, tmpl string) expandFunc {
	return func(text string, m []int) (string, bool) {
		return string(re.ExpandString(nil, tmpl, text, m)), true
	}
}

// substitute replaces leftmost non-overlapping matches of re. When expand
// rejects a match, scanning resumes one rune after the match start so a
// later candidate inside the rejected span can still match.
func substitute(re *regexp.Regexp, text string, expand expandFunc) (string, int) {
	var b strings.Builder
	last, pos, n := 0, 0, 0

	for pos < len(text) {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}

		repl, ok := expand(text, loc)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[loc[0]:])
			pos = loc[0] + size
			continue
		}

		b.WriteString(text[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
		pos = loc[1]
		n++
	}

	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}

// precededByAsync reports whether the token before offset at is the async keyword
func precededByAsync(text string, at int) bool {
	before := strings.TrimRight(text[:at], " \t\r\n")
	if !strings.HasSuffix(before, "async") {
		return false
	}
	rest := before[:len(before)-len("async")]
	return rest == "" || !isIdentByte(rest[len(rest)-1])
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
