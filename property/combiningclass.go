package property

import (
	"unicode"

	"github.com/fireproofsocks/unicode-set/interval"
)

// combiningMarkSet is every codepoint in a combining-mark category
// (Mn, Mc, Me); used to derive Canonical_Combining_Class = 0 ("not
// reordered"), the one ccc value derivable from stdlib data alone.
var combiningMarkSet = interval.Union(
	interval.Union(fromRangeTable(unicode.Mn), fromRangeTable(unicode.Mc)),
	fromRangeTable(unicode.Me),
)

// combiningClass resolves Canonical_Combining_Class=value. Go's stdlib
// carries no per-rune combining-class table (only category membership), so
// only ccc=0 is derivable without bundling ICU's own data: everything that
// isn't a combining mark has ccc 0 by definition. Any other requested class
// is reported as not-ok so the caller raises UnknownPropertyValue — see
// DESIGN.md for this Open Question resolution.
func combiningClass(value int) (interval.Set, bool) {
	if value == 0 {
		return interval.Complement(combiningMarkSet), true
	}
	return nil, false
}
