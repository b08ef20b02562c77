package property

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/fireproofsocks/unicode-set/interval"
)

// fromRangeTable converts a stdlib *unicode.RangeTable into our canonical
// interval.Set by visiting each of its runes with x/text's rangetable
// package — the accepted ecosystem way to iterate an otherwise-opaque
// RangeTable (stdlib deliberately doesn't expose iteration helpers) — and
// coalescing the visited runes into ranges.
func fromRangeTable(rt *unicode.RangeTable) interval.Set {
	if rt == nil {
		return interval.Set{}
	}
	var ivs []interval.Interval
	rangetable.Visit(rt, func(r rune) {
		ivs = append(ivs, interval.Interval{Lo: r, Hi: r})
	})
	return interval.Of(ivs...)
}

// assignedSet is every codepoint with an assigned Unicode meaning, used to
// derive both "Assigned" and the unassigned category "Cn" (§4.A). Pinned to
// the same Unicode version the stdlib unicode package tables were built
// against, so "Assigned" and e.g. "Script=Han" stay mutually consistent.
var assignedSet = fromRangeTable(rangetable.Assigned(unicode.Version))
