package property

import (
	"unicode"

	"github.com/fireproofsocks/unicode-set/interval"
)

// The five directional/style quote-mark subdivisions in §4.A
// (quote_mark_left, quote_mark_right, quote_mark_ambidextrous,
// quote_mark_single, quote_mark_double) are ICU-derived groupings with no
// stdlib equivalent; Go only exposes the umbrella Quotation_Mark property
// (unicode.Properties["Quotation_Mark"]). These are small, fixed,
// hand-maintained codepoint lists covering the common General Punctuation
// quotation marks — not a claim of full ICU parity, see DESIGN.md.
var (
	quoteMarkLeft = []rune{
		'‘', // LEFT SINGLE QUOTATION MARK
		'“', // LEFT DOUBLE QUOTATION MARK
		'‹', // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
		'«', // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
		'⸂', '⸄', '⸉', '⸌', '⸜', '⸠',
	}
	quoteMarkRight = []rune{
		'’', // RIGHT SINGLE QUOTATION MARK
		'”', // RIGHT DOUBLE QUOTATION MARK
		'›', // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
		'»', // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
		'⸃', '⸅', '⸊', '⸍', '⸝', '⸡',
	}
	quoteMarkAmbidextrous = []rune{
		'"', '\'',
		'‚', // SINGLE LOW-9 QUOTATION MARK
		'„', // DOUBLE LOW-9 QUOTATION MARK
		'〝', '〞', '〟',
	}
	quoteMarkSingle = []rune{'‘', '’', '‚', '‛', '‹', '›', '\''}
	quoteMarkDouble = []rune{'“', '”', '„', '‟', '«', '»', '"'}
)

func setOfRunes(rs []rune) interval.Set {
	ivs := make([]interval.Interval, len(rs))
	for i, r := range rs {
		ivs[i] = interval.Interval{Lo: r, Hi: r}
	}
	return interval.Of(ivs...)
}

// quoteMark resolves the derived quote_mark family from §4.A.
func quoteMark(canonValue string) (interval.Set, bool) {
	switch canonValue {
	case "quotemark":
		return fromRangeTable(unicode.Properties["Quotation_Mark"]), true
	case "quotemarkleft":
		return setOfRunes(quoteMarkLeft), true
	case "quotemarkright":
		return setOfRunes(quoteMarkRight), true
	case "quotemarkambidextrous":
		return setOfRunes(quoteMarkAmbidextrous), true
	case "quotemarksingle":
		return setOfRunes(quoteMarkSingle), true
	case "quotemarkdouble":
		return setOfRunes(quoteMarkDouble), true
	}
	return nil, false
}
