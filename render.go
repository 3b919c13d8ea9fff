package go_styledhelp

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arran4/go-styledhelp/cstr"
)

// Color modes accepted by Render.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Render writes text to w with its style markup applied.
//
// color is one of auto, always or never. With auto, color is used only when
// w is a terminal.
func Render(w io.Writer, text string, color string) error {
	r := lipgloss.NewRenderer(w)
	switch color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAuto, "":
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	default:
		return fmt.Errorf("unknown color mode %q", color)
	}
	_, err := fmt.Fprintln(w, cstr.New(r).Render(text))
	return err
}

// UseColor reports whether output to w should be colored for the given mode.
func UseColor(w io.Writer, color string) bool {
	switch color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
