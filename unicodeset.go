// Package unicodeset parses, resolves, compiles and re-serializes Unicode
// Set patterns (UTS #35 subset). It is the public facade over syntax,
// eval and match, mirroring the teacher's own top-level regex.go: a thin
// set of convenience entry points over the internal pipeline stages.
package unicodeset

import (
	"github.com/fireproofsocks/unicode-set/eval"
	"github.com/fireproofsocks/unicode-set/match"
	"github.com/fireproofsocks/unicode-set/syntax"
)

// Resolved is the fully evaluated form of a pattern: its canonical
// codepoint ranges plus any string-literal members.
type Resolved = eval.Resolved

// Predicate reports codepoint membership in a resolved set (string members
// are tested separately; see Contains).
type Predicate = match.Predicate

// Entry is one member of a ToPatternList result (see match.Entry).
type Entry = match.Entry

// Parse lexes and parses pattern into an AST without resolving any
// property references or interval algebra.
func Parse(pattern string) (*syntax.AST, error) {
	ast, err := syntax.NewParser().Parse(pattern)
	if err != nil {
		return nil, err
	}
	return ast, nil
}

// Resolve parses pattern and evaluates it down to its codepoints and
// string-literal members.
func Resolve(pattern string) (Resolved, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return Resolved{}, err
	}
	r, evalErr := eval.Evaluate(ast)
	if evalErr != nil {
		return Resolved{}, evalErr
	}
	return r, nil
}

// Compile parses and resolves pattern, returning a Predicate that tests
// codepoint membership against it.
func Compile(pattern string) (Predicate, error) {
	r, err := Resolve(pattern)
	if err != nil {
		return nil, err
	}
	return match.Compile(r), nil
}

// Matches parses and resolves pattern, then reports whether value belongs
// to it — as a single codepoint or as an exact string-literal member.
func Matches(pattern, value string) (bool, error) {
	r, err := Resolve(pattern)
	if err != nil {
		return false, err
	}
	return match.Contains(r, value), nil
}

// ToRegexClass parses and resolves pattern, returning its regex
// character-class rendering.
func ToRegexClass(pattern string) (string, error) {
	r, err := Resolve(pattern)
	if err != nil {
		return "", err
	}
	return match.ToRegexClass(r), nil
}

// ToPatternList parses and resolves pattern, returning its expanded
// per-codepoint enumeration (codepoint, or NEGATED(codepoint) when the
// resolved set is rendered as a complement) for callers such as parser
// combinators that want a flat member list rather than intervals.
func ToPatternList(pattern string) ([]Entry, error) {
	r, err := Resolve(pattern)
	if err != nil {
		return nil, err
	}
	return match.ToPatternList(r), nil
}
