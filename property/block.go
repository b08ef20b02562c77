package property

import (
	"github.com/fireproofsocks/unicode-set/interval"
)

// blockRange is one named Unicode block (UAX #24's Blocks.txt assigns
// every codepoint to exactly one named, contiguous range). Go's stdlib
// unicode package carries no equivalent of these ranges — it exports
// Categories, Scripts and Properties but never a Blocks table — so this is
// a small, hand-maintained table covering the common blocks, the same
// fixed-table approach quotemark.go uses for its own ICU-derived groupings
// with no stdlib source.
type blockRange struct {
	name   string
	lo, hi rune
}

var blockRanges = []blockRange{
	{"Basic Latin", 0x0000, 0x007F},
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Latin Extended-A", 0x0100, 0x017F},
	{"Latin Extended-B", 0x0180, 0x024F},
	{"IPA Extensions", 0x0250, 0x02AF},
	{"Spacing Modifier Letters", 0x02B0, 0x02FF},
	{"Combining Diacritical Marks", 0x0300, 0x036F},
	{"Greek and Coptic", 0x0370, 0x03FF},
	{"Cyrillic", 0x0400, 0x04FF},
	{"Cyrillic Supplement", 0x0500, 0x052F},
	{"Armenian", 0x0530, 0x058F},
	{"Hebrew", 0x0590, 0x05FF},
	{"Arabic", 0x0600, 0x06FF},
	{"Syriac", 0x0700, 0x074F},
	{"Thaana", 0x0780, 0x07BF},
	{"Devanagari", 0x0900, 0x097F},
	{"Bengali", 0x0980, 0x09FF},
	{"Gurmukhi", 0x0A00, 0x0A7F},
	{"Gujarati", 0x0A80, 0x0AFF},
	{"Oriya", 0x0B00, 0x0B7F},
	{"Tamil", 0x0B80, 0x0BFF},
	{"Telugu", 0x0C00, 0x0C7F},
	{"Kannada", 0x0C80, 0x0CFF},
	{"Malayalam", 0x0D00, 0x0D7F},
	{"Thai", 0x0E00, 0x0E7F},
	{"Lao", 0x0E80, 0x0EFF},
	{"Tibetan", 0x0F00, 0x0FFF},
	{"Georgian", 0x10A0, 0x10FF},
	{"Hangul Jamo", 0x1100, 0x11FF},
	{"Latin Extended Additional", 0x1E00, 0x1EFF},
	{"Greek Extended", 0x1F00, 0x1FFF},
	{"General Punctuation", 0x2000, 0x206F},
	{"Superscripts and Subscripts", 0x2070, 0x209F},
	{"Currency Symbols", 0x20A0, 0x20CF},
	{"Combining Diacritical Marks for Symbols", 0x20D0, 0x20FF},
	{"Letterlike Symbols", 0x2100, 0x214F},
	{"Number Forms", 0x2150, 0x218F},
	{"Arrows", 0x2190, 0x21FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Miscellaneous Technical", 0x2300, 0x23FF},
	{"Control Pictures", 0x2400, 0x243F},
	{"Box Drawing", 0x2500, 0x257F},
	{"Block Elements", 0x2580, 0x259F},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Miscellaneous Symbols", 0x2600, 0x26FF},
	{"Dingbats", 0x2700, 0x27BF},
	{"CJK Radicals Supplement", 0x2E80, 0x2EFF},
	{"Kangxi Radicals", 0x2F00, 0x2FDF},
	{"Hiragana", 0x3040, 0x309F},
	{"Katakana", 0x30A0, 0x30FF},
	{"Bopomofo", 0x3100, 0x312F},
	{"Hangul Compatibility Jamo", 0x3130, 0x318F},
	{"CJK Unified Ideographs", 0x4E00, 0x9FFF},
	{"Hangul Syllables", 0xAC00, 0xD7A3},
	{"CJK Compatibility Ideographs", 0xF900, 0xFAFF},
	{"Alphabetic Presentation Forms", 0xFB00, 0xFB4F},
	{"Arabic Presentation Forms-A", 0xFB50, 0xFDFF},
	{"Halfwidth and Fullwidth Forms", 0xFF00, 0xFFEF},
	{"Specials", 0xFFF0, 0xFFFF},
	{"Emoticons", 0x1F600, 0x1F64F},
}

var blocksByCanonicalName map[string]interval.Set

func init() {
	blocksByCanonicalName = make(map[string]interval.Set, len(blockRanges))
	for _, b := range blockRanges {
		blocksByCanonicalName[canonicalize(b.name)] = interval.Of(interval.Interval{Lo: b.lo, Hi: b.hi})
	}
}

// block resolves a canonicalized Block value, e.g. "latin-1supplement" for
// "Latin-1 Supplement", against blockRanges. Keyed with the same plain
// canonicalize() the caller (resolve, §4.A) uses — hyphens are meaningful
// in a handful of block names and must survive on both sides of the lookup.
func block(canonValue string) (interval.Set, bool) {
	if s, ok := blocksByCanonicalName[canonValue]; ok {
		return s, true
	}
	return nil, false
}
