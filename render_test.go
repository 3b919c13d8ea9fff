package go_styledhelp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNever(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, "Use <c>--name</> to <s>set</> it.", ColorNever))
	assert.Equal(t, "Use --name to set it.\n", out.String())
}

func TestRenderAutoNonTerminal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, "<r>red</>", ColorAuto))
	assert.Equal(t, "red\n", out.String())
}

func TestRenderAlways(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, "<r>red</>", ColorAlways))
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "red")
}

func TestRenderUnknownMode(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, Render(&out, "x", "sometimes"), "unknown color mode")
}

func TestUseColor(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, UseColor(&out, ColorAlways))
	assert.False(t, UseColor(&out, ColorNever))
	assert.False(t, UseColor(&out, ColorAuto))
}

func TestHelpSyntax(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HelpSyntax(&out))
	assert.Contains(t, out.String(), "//styledhelp:generate")
	assert.Contains(t, out.String(), `helpfmt:"cstr"`)
}
