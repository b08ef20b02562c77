// Package eval folds a parsed Unicode Set AST down to its two resolved
// components (component D, §4.D/§4.E): a canonical interval.Set of
// codepoints and the set of multi-codepoint string literals it includes.
package eval

import (
	"sort"

	"github.com/fireproofsocks/unicode-set/interval"
	"github.com/fireproofsocks/unicode-set/property"
	"github.com/fireproofsocks/unicode-set/seterr"
	"github.com/fireproofsocks/unicode-set/syntax"
)

// Resolved is the evaluated form of a set expression: a canonical codepoint
// range list plus any string-literal members (§4.E; negation never touches
// Strings, only Codepoints).
type Resolved struct {
	Codepoints interval.Set
	Strings    []string
}

// Evaluate walks ast.Root and folds it into a Resolved value.
func Evaluate(ast *syntax.AST) (Resolved, *seterr.Error) {
	return evalNode(ast.Root)
}

func evalNode(n syntax.Node) (Resolved, *seterr.Error) {
	switch n.Op {
	case syntax.OpLiteral:
		return Resolved{Codepoints: interval.Single(n.Codepoint)}, nil

	case syntax.OpRange:
		return Resolved{Codepoints: interval.Of(interval.Interval{Lo: n.Lo, Hi: n.Hi})}, nil

	case syntax.OpStringLiteral:
		return Resolved{Strings: []string{string(n.Runes)}}, nil

	case syntax.OpPropertyRef:
		s, err := property.Resolve(n.PropType, n.PropValue, n.Negated)
		if err != nil {
			return Resolved{}, err.WithOffset(n.Pos.Begin)
		}
		return Resolved{Codepoints: s}, nil

	case syntax.OpSet:
		return evalSet(n)

	default:
		return Resolved{}, seterr.New(seterr.UnbalancedBracket, n.Pos.Begin, "cannot evaluate node %s", n.Op)
	}
}

// evalSet folds a Set's alternating operand/operator/operand Children list
// left-associatively at equal precedence (§4.C, §4.D), then applies the
// Set's own leading negation, if any, to the codepoints only (§4.E).
func evalSet(n syntax.Node) (Resolved, *seterr.Error) {
	if len(n.Children) == 0 {
		return applyNegation(Resolved{}, n.Negated), nil
	}

	acc, err := evalNode(n.Children[0])
	if err != nil {
		return Resolved{}, err
	}

	for i := 1; i < len(n.Children); i += 2 {
		opNode := n.Children[i]
		rhs, err := evalNode(n.Children[i+1])
		if err != nil {
			return Resolved{}, err
		}
		acc = combine(acc, opNode.Kind, rhs)
	}

	return applyNegation(acc, n.Negated), nil
}

// combine folds one operator/operand step of a Set's Children list. Operands
// of & and - are themselves bracketed sets (enforced by the parser), and a
// bracketed set can itself contain string-literal members (e.g. the right
// side of `[[abc]-[{ab}cd]]` is a Set holding both a StringLiteral and plain
// chars), so all three operators apply their algebra to Strings as well as
// Codepoints (§4.E) — not just UnionImplicit.
func combine(lhs Resolved, op syntax.OperatorKind, rhs Resolved) Resolved {
	switch op {
	case syntax.Intersect:
		return Resolved{
			Codepoints: interval.Intersect(lhs.Codepoints, rhs.Codepoints),
			Strings:    intersectStrings(lhs.Strings, rhs.Strings),
		}
	case syntax.Difference:
		return Resolved{
			Codepoints: interval.Difference(lhs.Codepoints, rhs.Codepoints),
			Strings:    differenceStrings(lhs.Strings, rhs.Strings),
		}
	default: // UnionImplicit
		return Resolved{
			Codepoints: interval.Union(lhs.Codepoints, rhs.Codepoints),
			Strings:    unionStrings(lhs.Strings, rhs.Strings),
		}
	}
}

func applyNegation(r Resolved, negated bool) Resolved {
	if !negated {
		return r
	}
	return Resolved{Codepoints: interval.Complement(r.Codepoints), Strings: r.Strings}
}

func unionStrings(a, b []string) []string {
	if len(a) == 0 {
		return dedupSortedStrings(b)
	}
	if len(b) == 0 {
		return dedupSortedStrings(a)
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func intersectStrings(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		if inB[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func differenceStrings(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		if !inB[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func dedupSortedStrings(a []string) []string {
	if len(a) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
