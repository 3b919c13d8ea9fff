package go_styledhelp

import (
	"fmt"
	"go/token"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/arran4/go-styledhelp/internal/logfields"
	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/parsers"
	"github.com/arran4/go-styledhelp/parsers/gosource"
)

var log = logrus.WithField(logfields.LogSubsys, "styledhelp")

// Change is a file whose help comments were, or would be, rewritten.
type Change struct {
	// Path is the file path joined onto the processed directory.
	Path   string
	Before []byte
	After  []byte
	// Fields is the number of fields rewritten.
	Fields int

	name string
}

// Rewrite turns the doc comments of eligible struct fields into help tags.
//
// Files below dir, optionally restricted to paths, are rewritten in place.
// With dryRun the changes are only reported.
func Rewrite(fsys afero.Fs, dir string, paths []string, cfg *Config, dryRun bool) ([]*Change, error) {
	changes, err := plan(fsys, dir, paths, cfg)
	if err != nil {
		return nil, err
	}
	root := rootFs(fsys, dir)
	for _, c := range changes {
		scoped := log.WithFields(logrus.Fields{logfields.File: c.Path, logfields.Count: c.Fields})
		if dryRun {
			scoped.Info("Would rewrite")
			continue
		}
		if err := writeFile(root, c.name, c.After); err != nil {
			return nil, err
		}
		scoped.Info("Rewrote")
	}
	return changes, nil
}

// plan parses the selected files and computes their rewritten content
// without touching the filesystem.
func plan(fsys afero.Fs, dir string, paths []string, cfg *Config) ([]*Change, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	root := rootFs(fsys, dir)
	opts := cfg.ParseOptions(paths)
	files, err := parsers.GoFiles(afero.NewIOFS(root), ".", opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}

	fset := token.NewFileSet()
	var changes []*Change
	for _, name := range files {
		c, err := planFile(root, fset, dir, name, opts)
		if err != nil {
			return nil, err
		}
		if c != nil {
			changes = append(changes, c)
		}
	}
	return changes, nil
}

func planFile(root afero.Fs, fset *token.FileSet, dir, name string, opts *parsers.ParseOptions) (*Change, error) {
	p := filepath.Join(dir, filepath.FromSlash(name))
	src, err := afero.ReadFile(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	file, err := gosource.ParseFile(fset, p, src, opts)
	if err != nil {
		return nil, err
	}
	for _, w := range file.Warnings {
		log.WithField(logfields.File, p).Warnf("Skipping field: %v", w)
	}
	if len(file.Declarations) == 0 {
		return nil, nil
	}
	edits := file.Edits()
	out, changed, err := rewriteWith(file, edits)
	if err != nil || !changed {
		return nil, err
	}
	fields := map[*model.Field]bool{}
	for _, e := range edits {
		if fields[e.Field] {
			continue
		}
		fields[e.Field] = true
		log.WithFields(logrus.Fields{logfields.File: p, logfields.Field: e.Field.Name}).Debug("Field rewritten")
	}
	return &Change{Path: p, Before: src, After: out, Fields: len(fields), name: name}, nil
}

func rewriteWith(file *gosource.File, edits []gosource.Edit) ([]byte, bool, error) {
	if len(edits) == 0 {
		return file.Src, false, nil
	}
	out, err := gosource.Apply(file.Src, edits)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", file.Name, err)
	}
	return gosource.Format(file.Name, file.Src, out)
}

func rootFs(fsys afero.Fs, dir string) afero.Fs {
	if dir == "" || dir == "." {
		return fsys
	}
	return afero.NewBasePathFs(fsys, dir)
}

func writeFile(fsys afero.Fs, name string, content []byte) error {
	perm := fs.FileMode(0644)
	if info, err := fsys.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}
	if err := afero.WriteFile(fsys, name, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
