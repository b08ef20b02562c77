package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, pattern string) *AST {
	t.Helper()
	ast, err := NewParser().Parse(pattern)
	require.Nilf(t, err, "parsing %q: %v", pattern, err)
	return ast
}

func TestParseSingleChar(t *testing.T) {
	ast := parse(t, "[a]")
	require.Len(t, ast.Root.Children, 1)
	assert.Equal(t, OpLiteral, ast.Root.Children[0].Op)
	assert.Equal(t, rune('a'), ast.Root.Children[0].Codepoint)
}

func TestParseEmptySet(t *testing.T) {
	ast := parse(t, "[]")
	assert.Empty(t, ast.Root.Children)
	assert.False(t, ast.Root.Negated)
}

func TestParseNegation(t *testing.T) {
	ast := parse(t, "[^a]")
	assert.True(t, ast.Root.Negated)
}

func TestParseRange(t *testing.T) {
	ast := parse(t, "[a-z]")
	require.Len(t, ast.Root.Children, 1)
	r := ast.Root.Children[0]
	assert.Equal(t, OpRange, r.Op)
	assert.Equal(t, rune('a'), r.Lo)
	assert.Equal(t, rune('z'), r.Hi)
}

func TestParseEmptyRangeError(t *testing.T) {
	_, err := NewParser().Parse("[z-a]")
	require.NotNil(t, err)
	assert.Equal(t, "EmptyRange", err.Kind.String())
}

func TestParseImplicitUnion(t *testing.T) {
	ast := parse(t, "[abc]")
	// a UNION_IMPLICIT b UNION_IMPLICIT c -> 5 children
	require.Len(t, ast.Root.Children, 5)
	assert.Equal(t, OpOperator, ast.Root.Children[1].Op)
	assert.Equal(t, UnionImplicit, ast.Root.Children[1].Kind)
	assert.Equal(t, OpOperator, ast.Root.Children[3].Op)
}

func TestParseStringLiteralCollapsesToLiteral(t *testing.T) {
	ast := parse(t, "[{x}]")
	require.Len(t, ast.Root.Children, 1)
	assert.Equal(t, OpLiteral, ast.Root.Children[0].Op)
	assert.Equal(t, rune('x'), ast.Root.Children[0].Codepoint)
}

func TestParseStringLiteralMultiChar(t *testing.T) {
	ast := parse(t, "[{abcd}]")
	require.Len(t, ast.Root.Children, 1)
	lit := ast.Root.Children[0]
	assert.Equal(t, OpStringLiteral, lit.Op)
	assert.Equal(t, []rune("abcd"), lit.Runes)
}

func TestParseNestedSet(t *testing.T) {
	ast := parse(t, "[[a][b]]")
	require.Len(t, ast.Root.Children, 3)
	assert.Equal(t, OpSet, ast.Root.Children[0].Op)
	assert.Equal(t, OpSet, ast.Root.Children[2].Op)
}

func TestParseIntersectionAndDifference(t *testing.T) {
	ast := parse(t, "[[a-z]&[bcd]]")
	require.Len(t, ast.Root.Children, 3)
	assert.Equal(t, Intersect, ast.Root.Children[1].Kind)

	ast = parse(t, "[[a-z]-[aeiou]]")
	require.Len(t, ast.Root.Children, 3)
	assert.Equal(t, Difference, ast.Root.Children[1].Kind)
}

func TestParseOperatorNeedsSetLeft(t *testing.T) {
	// bare char left of '-' paired against a property ref
	_, err := NewParser().Parse("[A-[:Lu:]]")
	require.NotNil(t, err)
	assert.Equal(t, "OperatorNeedsSet", err.Kind.String())
}

func TestParseOperatorNeedsSetRight(t *testing.T) {
	_, err := NewParser().Parse("[[:Lu:]-A]")
	require.NotNil(t, err)
	assert.Equal(t, "OperatorNeedsSet", err.Kind.String())
}

func TestParseOperatorAcceptsNestedSetRight(t *testing.T) {
	ast := parse(t, "[[:Lu:]-[A]]")
	require.Len(t, ast.Root.Children, 3)
	assert.Equal(t, Difference, ast.Root.Children[1].Kind)
}

func TestParsePosixProperty(t *testing.T) {
	ast := parse(t, "[[:Lu:]]")
	require.Len(t, ast.Root.Children, 1)
	ref := ast.Root.Children[0]
	assert.Equal(t, OpPropertyRef, ref.Op)
	assert.Equal(t, "", ref.PropType)
	assert.Equal(t, "Lu", ref.PropValue)
	assert.False(t, ref.Negated)
}

func TestParsePosixPropertyNegated(t *testing.T) {
	ast := parse(t, "[[:^Lu:]]")
	ref := ast.Root.Children[0]
	assert.True(t, ref.Negated)
}

func TestParseBackslashPWithType(t *testing.T) {
	ast := parse(t, `[\p{script=Greek}]`)
	ref := ast.Root.Children[0]
	assert.Equal(t, OpPropertyRef, ref.Op)
	assert.Equal(t, "script", ref.PropType)
	assert.Equal(t, "Greek", ref.PropValue)
}

func TestParseBackslashPWithoutType(t *testing.T) {
	ast := parse(t, `[\p{Letter}]`)
	ref := ast.Root.Children[0]
	assert.Equal(t, "", ref.PropType)
	assert.Equal(t, "Letter", ref.PropValue)
}

func TestParseEmptyPropertyNameError(t *testing.T) {
	_, err := NewParser().Parse("[[::]]")
	require.NotNil(t, err)
	assert.Equal(t, "EmptyPropertyName", err.Kind.String())

	_, err = NewParser().Parse(`[\p{}]`)
	require.NotNil(t, err)
	assert.Equal(t, "EmptyPropertyName", err.Kind.String())
}

func TestParseUnbalancedBracket(t *testing.T) {
	_, err := NewParser().Parse("[abc")
	require.NotNil(t, err)
	assert.Equal(t, "UnbalancedBracket", err.Kind.String())
}

func TestParseMustStartWithBracket(t *testing.T) {
	_, err := NewParser().Parse(" [abc]")
	require.NotNil(t, err)
}

func TestParseRejectsTrailingContent(t *testing.T) {
	_, err := NewParser().Parse("[abc] ")
	require.NotNil(t, err)

	_, err = NewParser().Parse("[abc]x")
	require.NotNil(t, err)
}

func TestParseDepthExceeded(t *testing.T) {
	pattern := ""
	for i := 0; i < maxDepth+2; i++ {
		pattern += "["
	}
	pattern += "a"
	for i := 0; i < maxDepth+2; i++ {
		pattern += "]"
	}
	_, err := NewParser().Parse(pattern)
	require.NotNil(t, err)
	assert.Equal(t, "DepthExceeded", err.Kind.String())
}

func TestParseQuotedRangeLiteral(t *testing.T) {
	// a quoted '-' is a plain CHAR, never the difference/range operator.
	ast := parse(t, "['-']")
	require.Len(t, ast.Root.Children, 1)
	lit := ast.Root.Children[0]
	assert.Equal(t, OpLiteral, lit.Op)
	assert.Equal(t, rune('-'), lit.Codepoint)
}
