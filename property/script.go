package property

import (
	"unicode"

	"github.com/fireproofsocks/unicode-set/interval"
)

// scriptAliases covers the common spots where ICU's script spelling
// diverges from Go's unicode.Scripts keys (ISO 15924 4-letter codes vs.
// the English script name Go uses).
var scriptAliases = map[string]string{
	"hani": "han",
	"latn": "latin",
	"grek": "greek",
	"cyrl": "cyrillic",
	"arab": "arabic",
	"hebr": "hebrew",
	"hira": "hiragana",
	"kana": "katakana",
	"thai": "thai",
	"zyyy": "common",
	"zinh": "inherited",
	"qaai": "inherited",
}

var scriptsByCanonicalName map[string]*unicode.RangeTable

func init() {
	scriptsByCanonicalName = make(map[string]*unicode.RangeTable, len(unicode.Scripts))
	for name, rt := range unicode.Scripts {
		scriptsByCanonicalName[canonicalizeLoose(name)] = rt
	}
}

// script resolves a canonicalized Script value against unicode.Scripts,
// applying the ICU alias table first.
func script(canonValue string) (interval.Set, bool) {
	key := canonicalizeLoose(canonValue)
	if alias, ok := scriptAliases[key]; ok {
		key = alias
	}
	if rt, ok := scriptsByCanonicalName[key]; ok {
		return fromRangeTable(rt), true
	}
	return nil, false
}
