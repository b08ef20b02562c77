package property

import (
	"unicode"

	"github.com/fireproofsocks/unicode-set/interval"
	"github.com/fireproofsocks/unicode-set/seterr"
)

// generalCategory resolves a canonicalized General_Category value: the
// two-letter categories and the derived single-letter groups present in
// unicode.Categories (Go's stdlib carries both), plus four names stdlib has
// no entry for: the three fully-derived names from §4.A and the unassigned
// category Cn, derived as the complement of Assigned.
func generalCategory(canonValue string) (interval.Set, bool) {
	switch canonValue {
	case "any":
		return interval.Of(interval.Interval{Lo: 0, Hi: interval.MaxCodepoint}), true
	case "assigned":
		return assignedSet, true
	case "ascii":
		return interval.Of(interval.Interval{Lo: 0, Hi: 0x7F}), true
	case "cn":
		return interval.Complement(assignedSet), true
	}
	for name, rt := range unicode.Categories {
		if canonicalize(name) == canonValue {
			return fromRangeTable(rt), true
		}
	}
	return nil, false
}

// resolveCategoryOrScriptOrBoolean implements the CATEGORY_OR_SCRIPT
// resolution order from §4.A: General_Category, then Script, then Boolean
// properties, then the derived quote-mark properties. First match wins.
func resolveCategoryOrScriptOrBoolean(canonValue string) (interval.Set, *seterr.Error) {
	if s, ok := generalCategory(canonValue); ok {
		return s, nil
	}
	if s, ok := script(canonValue); ok {
		return s, nil
	}
	if s, ok := boolProperty(canonValue); ok {
		return s, nil
	}
	if s, ok := quoteMark(canonValue); ok {
		return s, nil
	}
	return nil, seterr.Unpositioned(seterr.UnknownProperty, "no General_Category, Script, boolean property, or derived quote-mark property named %q", canonValue)
}
