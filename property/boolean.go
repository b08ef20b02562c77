package property

import (
	"unicode"

	"github.com/fireproofsocks/unicode-set/interval"
)

var boolPropsByCanonicalName map[string]*unicode.RangeTable

func init() {
	boolPropsByCanonicalName = make(map[string]*unicode.RangeTable, len(unicode.Properties))
	for name, rt := range unicode.Properties {
		boolPropsByCanonicalName[canonicalize(name)] = rt
	}
}

// boolProperty resolves a canonicalized boolean-property name (e.g.
// White_Space, Dash, Diacritic) against unicode.Properties, treated as the
// property name with an implicit value of true per §4.A.
func boolProperty(canonValue string) (interval.Set, bool) {
	if rt, ok := boolPropsByCanonicalName[canonValue]; ok {
		return fromRangeTable(rt), true
	}
	return nil, false
}
