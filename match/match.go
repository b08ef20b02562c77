// Package match turns a resolved set (component D's output) into the four
// component-F outputs: a codepoint predicate, the split-pattern interval
// list, a regex character-class rewrite, and a NEGATED-aware pattern list
// for host parser-combinator needles.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fireproofsocks/unicode-set/eval"
	"github.com/fireproofsocks/unicode-set/interval"
)

// Predicate reports codepoint membership only (§4.F.1: "the predicate API
// is codepoint-only"). String members are exposed separately through
// Resolved.Strings; use Contains to test an arbitrary value against both.
type Predicate func(c rune) bool

// Compile builds a Predicate backed by binary search over r's codepoint
// ranges.
func Compile(r eval.Resolved) Predicate {
	codepoints := r.Codepoints
	return func(c rune) bool {
		return codepoints.Contains(c)
	}
}

// Contains reports whether s belongs to r: either as its single codepoint,
// or as an exact match against one of r's string-literal members.
func Contains(r eval.Resolved, s string) bool {
	runes := []rune(s)
	if len(runes) == 1 {
		return r.Codepoints.Contains(runes[0])
	}
	for _, member := range r.Strings {
		if member == s {
			return true
		}
	}
	return false
}

// SplitPatternIntervals returns r's codepoint ranges as a plain (lo, hi)
// sequence suitable for a host platform's multi-needle splitter (§4.F.2).
// This is simply r.Codepoints: the resolver already produces canonical
// (sorted, disjoint, coalesced) intervals, so no further transform is
// needed beyond exposing the type under this package's name. String
// members are not included in the result; they are only in r.Strings.
func SplitPatternIntervals(r eval.Resolved) interval.Set {
	return r.Codepoints
}

// Entry is one member of a ToPatternList result: either a plain codepoint,
// or — when Negated — a codepoint excluded from an otherwise full set; a
// list of Negated entries means "every codepoint except these is a member"
// (§4.F.4, §6: "[codepoint | NEGATED(codepoint)]").
type Entry struct {
	Codepoint rune
	Negated   bool
}

func (e Entry) String() string {
	if e.Negated {
		return fmt.Sprintf("NEGATED(U+%04X)", e.Codepoint)
	}
	return fmt.Sprintf("U+%04X", e.Codepoint)
}

// ToPatternList expands r.Codepoints into the literal codepoint-or-NEGATED
// sequence parser combinators consume (§6, §4.F.4). A direct enumeration of
// every member codepoint is the contract ("expanded enumeration; callers
// opting into this accept the size cost"); when the set covers more than
// half of the scalar range, enumerating its complement as NEGATED entries
// instead keeps the list bounded without changing its meaning — a set
// described as "everything except these" is exactly what a top-level
// negation produces, so this also covers §4.F.4's negated-set case without
// needing to thread the AST's negation flag through Resolved.
func ToPatternList(r eval.Resolved) []Entry {
	total := int64(interval.MaxCodepoint) + 1
	if r.Codepoints.Count() > total/2 {
		complement := interval.Complement(r.Codepoints)
		return enumerate(complement, true)
	}
	return enumerate(r.Codepoints, false)
}

func enumerate(s interval.Set, negated bool) []Entry {
	var entries []Entry
	for _, iv := range s {
		for c := iv.Lo; c <= iv.Hi; c++ {
			entries = append(entries, Entry{Codepoint: c, Negated: negated})
		}
	}
	return entries
}

// ToRegexClass renders the resolved codepoints as a `[...]`-style regex
// character class, the rewritten form a top-level \p{X}/[:X:] (or any
// nested property/set reference folded in by the evaluator) becomes before
// being handed to the host regex compiler (§4.F.3). String-literal members
// have no single-class regex equivalent, so they are appended as a
// separate `(?:lit1|lit2)` alternation, the whole wrapped in a
// non-capturing group when both are present.
func ToRegexClass(r eval.Resolved) string {
	var class strings.Builder
	class.WriteByte('[')
	for _, iv := range r.Codepoints {
		class.WriteString(rangeText(iv))
	}
	class.WriteByte(']')

	if len(r.Strings) == 0 {
		return class.String()
	}

	literals := append([]string(nil), r.Strings...)
	sort.Strings(literals)
	quoted := make([]string, len(literals))
	for i, lit := range literals {
		quoted[i] = regexQuote(lit)
	}

	if r.Codepoints.IsEmpty() {
		return "(?:" + strings.Join(quoted, "|") + ")"
	}
	return "(?:" + class.String() + "|" + strings.Join(quoted, "|") + ")"
}

// rangeText renders one interval using the \u{XXXX} hex-escape form
// uniformly, rather than mixing in literal characters: most of the
// properties this renders (whitespace, combining marks, separators) are
// unreadable or regex-metachar-colliding as literals, so every bound gets
// the same unambiguous form (spec.md scenario #10).
func rangeText(iv interval.Interval) string {
	if iv.Lo == iv.Hi {
		return escapeRune(iv.Lo)
	}
	return escapeRune(iv.Lo) + "-" + escapeRune(iv.Hi)
}

func escapeRune(r rune) string {
	return fmt.Sprintf(`\u{%X}`, r)
}

func regexQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '|', '^', '$':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
