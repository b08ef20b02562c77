package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireproofsocks/unicode-set/interval"
)

func TestResolveGeneralCategory(t *testing.T) {
	s, err := Resolve(CategoryOrScript, "Lu", false)
	require.Nil(t, err)
	assert.True(t, s.Contains('A'))
	assert.False(t, s.Contains('a'))
}

func TestResolveDerivedGroup(t *testing.T) {
	// L = Lu|Ll|Lt|Lm|Lo
	l, err := Resolve(CategoryOrScript, "L", false)
	require.Nil(t, err)
	assert.True(t, l.Contains('a'))
	assert.True(t, l.Contains('A'))
}

func TestResolveAnyAssignedASCII(t *testing.T) {
	any_, err := Resolve(CategoryOrScript, "Any", false)
	require.Nil(t, err)
	assert.Equal(t, interval.Of(interval.Interval{Lo: 0, Hi: interval.MaxCodepoint}), any_)

	ascii, err := Resolve(CategoryOrScript, "ASCII", false)
	require.Nil(t, err)
	assert.Equal(t, interval.Of(interval.Interval{Lo: 0, Hi: 0x7F}), ascii)

	assigned, err := Resolve(CategoryOrScript, "Assigned", false)
	require.Nil(t, err)
	cn, err := Resolve(CategoryOrScript, "Cn", false)
	require.Nil(t, err)
	assert.Equal(t, interval.Complement(assigned), cn)
}

func TestResolveScript(t *testing.T) {
	s, err := Resolve(CategoryOrScript, "Thai", false)
	require.Nil(t, err)
	assert.True(t, s.Contains(0xE53)) // Thai digit three, spec.md scenario #4
}

func TestResolveScriptAlias(t *testing.T) {
	s, err := Resolve(CategoryOrScript, "Hani", false)
	require.Nil(t, err)
	assert.True(t, s.Contains('漢'))
}

func TestResolveBooleanProperty(t *testing.T) {
	s, err := Resolve(CategoryOrScript, "White_Space", false)
	require.Nil(t, err)
	assert.True(t, s.Contains(' '))
	assert.False(t, s.Contains('a'))
}

func TestResolveNegated(t *testing.T) {
	s, err := Resolve(CategoryOrScript, "Lu", false)
	require.Nil(t, err)
	notS, err := Resolve(CategoryOrScript, "Lu", true)
	require.Nil(t, err)
	assert.Equal(t, interval.Complement(s), notS)
}

func TestResolveUnknownProperty(t *testing.T) {
	_, err := Resolve(CategoryOrScript, "NotARealPropertyName", false)
	require.NotNil(t, err)
}

func TestResolveExplicitType(t *testing.T) {
	s, err := Resolve("script", "Arabic", false)
	require.Nil(t, err)
	assert.True(t, s.Contains(0x0627)) // ARABIC LETTER ALEF
}

func TestResolveBlock(t *testing.T) {
	s, err := Resolve("block", "Basic Latin", false)
	require.Nil(t, err)
	assert.True(t, s.Contains('A'))
	assert.False(t, s.Contains(0x00E9)) // é, Latin-1 Supplement

	s, err = Resolve("blk", "Latin-1 Supplement", false)
	require.Nil(t, err)
	assert.True(t, s.Contains(0x00E9))
	assert.False(t, s.Contains('A'))
}

func TestResolveBlockUnknown(t *testing.T) {
	_, err := Resolve("block", "NotARealBlock", false)
	require.NotNil(t, err)
	assert.Equal(t, "UnknownPropertyValue", err.Kind.String())
}

func TestResolveCombiningClassZero(t *testing.T) {
	s, err := Resolve("ccc", "0", false)
	require.Nil(t, err)
	assert.True(t, s.Contains('a'))
}

func TestResolveCombiningClassUnsupported(t *testing.T) {
	_, err := Resolve("ccc", "230", false)
	require.NotNil(t, err)
	assert.Equal(t, err.Kind.String(), "UnknownPropertyValue")
}

func TestResolveQuoteMarkFamily(t *testing.T) {
	for _, name := range []string{"quote_mark", "quote_mark_left", "quote_mark_right", "quote_mark_ambidextrous", "quote_mark_single", "quote_mark_double"} {
		s, err := Resolve(CategoryOrScript, name, false)
		require.Nilf(t, err, "resolving %s", name)
		assert.Falsef(t, s.IsEmpty(), "%s should not be empty", name)
	}
}
