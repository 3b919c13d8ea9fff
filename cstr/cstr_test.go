package cstr

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "no markup", "no markup"},
		{"Short Tag", "Sort messages using <c>--sync-interval-ms</> option", "Sort messages using --sync-interval-ms option"},
		{"Long Tag", "<cyan>a</cyan> <white>b</>", "a b"},
		{"Nested", "<s>bold <r>red</> bold</>", "bold red bold"},
		{"Named Close Of Outer", "<s>a<u>b</s>c", "abc"},
		{"Escaped", "a << b", "a < b"},
		{"Unknown Tag", "<x>kept</x>", "<x>kept</x>"},
		{"Unmatched Close", "text</>", "text</>"},
		{"Unmatched Named Close", "<r>a</g>b</>", "a</g>b"},
		{"Unterminated", "a <c", "a <c"},
		{"Comparison", "a < b <c>x</>", "a < b x"},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestParseStack(t *testing.T) {
	segs := parse("a<c>b<s>c</>d</c>e")
	require.Len(t, segs, 5)
	assert.Equal(t, segment{text: "a"}, segs[0])
	assert.Equal(t, segment{text: "b", tags: []string{"cyan"}}, segs[1])
	assert.Equal(t, segment{text: "c", tags: []string{"cyan", "bold"}}, segs[2])
	assert.Equal(t, segment{text: "d", tags: []string{"cyan"}}, segs[3])
	assert.Equal(t, segment{text: "e"}, segs[4])
}

func TestRenderAscii(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	f := New(r)

	in := "Sort messages using <c>--sync-interval-ms</> option"
	assert.Equal(t, Strip(in), f.Render(in))
}

func TestRenderANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	f := New(r)

	got := f.Render("plain <r>red</> plain")
	assert.True(t, strings.HasPrefix(got, "plain "), "unstyled prefix kept: %q", got)
	assert.True(t, strings.HasSuffix(got, " plain"), "unstyled suffix kept: %q", got)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "red")
	assert.NotContains(t, got, "<r>")

	assert.Equal(t, "no markup", f.Render("no markup"))
}
