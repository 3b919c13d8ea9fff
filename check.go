package go_styledhelp

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

var (
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).TabWidth(lipgloss.NoTabConversion)
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).TabWidth(lipgloss.NoTabConversion)
	styleHunk    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Check reports fields whose doc comments have not been rewritten yet.
//
// A unified diff of every pending change is written to w. ErrChangesPending
// is returned when any file would change, so the command fails in CI.
func Check(fsys afero.Fs, dir string, paths []string, cfg *Config, w io.Writer, color bool) error {
	changes, err := plan(fsys, dir, paths, cfg)
	if err != nil {
		return err
	}
	for _, c := range changes {
		text, err := Diff(c)
		if err != nil {
			return err
		}
		if color {
			text = colorizeDiff(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	if len(changes) > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrChangesPending, len(changes))
	}
	return nil
}

// Diff returns the unified diff between the original and rewritten content
// of c.
func Diff(c *Change) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(c.Before)),
		B:        difflib.SplitLines(string(c.After)),
		FromFile: c.Path,
		ToFile:   c.Path + " (rewritten)",
		Context:  3,
	})
}

func colorizeDiff(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			continue
		case strings.HasPrefix(body, "@@"):
			lines[i] = styleHunk.Render(body) + nl
		case strings.HasPrefix(body, "+"):
			lines[i] = styleAdded.Render(body) + nl
		case strings.HasPrefix(body, "-"):
			lines[i] = styleRemoved.Render(body) + nl
		}
	}
	return strings.Join(lines, "")
}
