package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestResolveCommand(t *testing.T) {
	out := runCommand(t, "resolve", "[a-c]")
	assert.Equal(t, "codepoints: 3\n", out)
}

func TestMatchCommand(t *testing.T) {
	out := runCommand(t, "match", "[a-z]", "m")
	assert.Equal(t, "true\n", out)
}

func TestRegexCommand(t *testing.T) {
	out := runCommand(t, "regex", "[a-c]")
	assert.Equal(t, "[\\u{61}-\\u{63}]\n", out)
}

func TestListCommand(t *testing.T) {
	out := runCommand(t, "list", "[ac]")
	assert.Equal(t, "U+0061\nU+0063\n", out)
}

func TestResolveCommandBadPattern(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"resolve", "abc"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	require.Error(t, err)
}
