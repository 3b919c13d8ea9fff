package go_styledhelp

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/arran4/go-styledhelp/cstr"
	"github.com/arran4/go-styledhelp/internal/logfields"
	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/parsers"
	_ "github.com/arran4/go-styledhelp/parsers/gosource"
	"github.com/arran4/go-styledhelp/rewriter"
)

// Scan lists the eligible structs below dir and writes the help each field
// would get to w. No file is modified.
func Scan(fsys afero.Fs, dir string, cfg *Config, w io.Writer) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p, err := parsers.Get("gosource")
	if err != nil {
		return err
	}
	dataModel, err := p.Parse(afero.NewIOFS(rootFs(fsys, dir)), ".", cfg.ParseOptions(nil))
	if err != nil {
		return err
	}

	rw := rewriter.New(cfg.Keys())
	for _, decl := range dataModel.Declarations {
		name := decl.Name
		if decl.ImportPath != "" {
			name = decl.ImportPath + "." + decl.Name
		}
		fmt.Fprintf(w, "Struct: %s (%s)\n", name, path.Join(dir, decl.File))
		for _, f := range decl.Fields {
			status := printField(w, rw, f)
			log.WithFields(logrus.Fields{
				logfields.File:   path.Join(dir, decl.File),
				logfields.Decl:   decl.Name,
				logfields.Field:  f.Name,
				logfields.Status: status,
			}).Debug("Scanned field")
		}
	}
	return nil
}

// printField writes the status line of f and returns the status.
func printField(w io.Writer, rw *rewriter.Rewriter, f *model.Field) string {
	if rewriter.HasExplicitHelp(f) {
		fmt.Fprintf(w, "  %s: explicit\n", f.Name)
		return "explicit"
	}
	c := f.Clone()
	rw.Rewrite(c)
	status := c.Status()
	arg := c.Arg()
	if arg == nil || arg.Help == nil {
		fmt.Fprintf(w, "  %s: %s\n", f.Name, status)
		return status
	}
	text := arg.Help.Text
	if arg.Help.Styled {
		text = cstr.Strip(text)
	}
	fmt.Fprintf(w, "  %s: %s %q\n", f.Name, status, strings.TrimSpace(text))
	return status
}
