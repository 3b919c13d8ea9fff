// Package cstr renders help strings that carry colour markup such as
// "<c>--sync-interval-ms</>" for a terminal.
//
// Supported tags are <s>/<bold>, <u>/<underline>, <k>/<black>, <r>/<red>,
// <g>/<green>, <y>/<yellow>, <b>/<blue>, <m>/<magenta>, <c>/<cyan> and
// <w>/<white>. Tags nest. </> closes the innermost open tag and </name>
// closes the innermost open tag of that name. << is a literal <. Anything
// else, including unmatched closing tags, is kept as text.
package cstr

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styleFunc func(lipgloss.Style) lipgloss.Style

func fg(c string) styleFunc {
	return func(s lipgloss.Style) lipgloss.Style { return s.Foreground(lipgloss.Color(c)) }
}

var styles = map[string]styleFunc{
	"bold":      func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"underline": func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"black":     fg("0"),
	"red":       fg("1"),
	"green":     fg("2"),
	"yellow":    fg("3"),
	"blue":      fg("4"),
	"magenta":   fg("5"),
	"cyan":      fg("6"),
	"white":     fg("7"),
}

var aliases = map[string]string{
	"s": "bold",
	"u": "underline",
	"k": "black",
	"r": "red",
	"g": "green",
	"y": "yellow",
	"b": "blue",
	"m": "magenta",
	"c": "cyan",
	"w": "white",
}

func canonical(name string) (string, bool) {
	if a, ok := aliases[name]; ok {
		return a, true
	}
	_, ok := styles[name]
	return name, ok
}

// Formatter renders markup with the styles of one lipgloss renderer.
type Formatter struct {
	renderer *lipgloss.Renderer
}

// New returns a Formatter bound to r. The renderer decides the colour
// profile, so output degrades to plain text where colour is unsupported.
func New(r *lipgloss.Renderer) *Formatter {
	return &Formatter{renderer: r}
}

// Render renders s with the default lipgloss renderer.
func Render(s string) string {
	return New(lipgloss.DefaultRenderer()).Render(s)
}

// Render replaces the markup in s with terminal styling.
func (f *Formatter) Render(s string) string {
	var sb strings.Builder
	for _, seg := range parse(s) {
		if len(seg.tags) == 0 || seg.text == "" {
			sb.WriteString(seg.text)
			continue
		}
		style := f.renderer.NewStyle()
		for _, tag := range seg.tags {
			style = styles[tag](style)
		}
		sb.WriteString(style.Render(seg.text))
	}
	return sb.String()
}

// Strip removes the markup from s without styling it.
func Strip(s string) string {
	var sb strings.Builder
	for _, seg := range parse(s) {
		sb.WriteString(seg.text)
	}
	return sb.String()
}

type segment struct {
	text string
	tags []string
}

func parse(s string) []segment {
	var (
		segs  []segment
		stack []string
		text  strings.Builder
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		segs = append(segs, segment{text: text.String(), tags: append([]string(nil), stack...)})
		text.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] != '<' {
			j := strings.IndexByte(s[i:], '<')
			if j < 0 {
				j = len(s) - i
			}
			text.WriteString(s[i : i+j])
			i += j
			continue
		}
		if strings.HasPrefix(s[i:], "<<") {
			text.WriteByte('<')
			i += 2
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			text.WriteString(s[i:])
			break
		}
		if strings.IndexByte(s[i+1:i+end], '<') >= 0 {
			text.WriteByte('<')
			i++
			continue
		}
		raw := s[i : i+end+1]
		name := raw[1 : len(raw)-1]
		i += end + 1

		switch {
		case name == "/":
			if len(stack) == 0 {
				text.WriteString(raw)
				continue
			}
			flush()
			stack = stack[:len(stack)-1]
		case strings.HasPrefix(name, "/"):
			c, ok := canonical(name[1:])
			idx := -1
			if ok {
				for k := len(stack) - 1; k >= 0; k-- {
					if stack[k] == c {
						idx = k
						break
					}
				}
			}
			if idx < 0 {
				text.WriteString(raw)
				continue
			}
			flush()
			stack = stack[:idx]
		default:
			c, ok := canonical(name)
			if !ok {
				text.WriteString(raw)
				continue
			}
			flush()
			stack = append(stack, c)
		}
	}
	flush()
	return segs
}
