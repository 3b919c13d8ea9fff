package go_styledhelp

import (
	"context"
	"fmt"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/arran4/go-styledhelp/internal/logfields"
	"github.com/arran4/go-styledhelp/parsers"
)

// Watch rewrites the selected files once and then again each time one is
// saved.
//
// Every directory holding selected Go files is watched. A write to one of
// those files triggers a rewrite of that file only. Watch returns when ctx is
// done.
func Watch(ctx context.Context, fsys afero.Fs, dir string, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if _, err := Rewrite(fsys, dir, nil, cfg, false); err != nil {
		return err
	}

	root := rootFs(fsys, dir)
	opts := cfg.ParseOptions(nil)
	files, err := parsers.GoFiles(afero.NewIOFS(root), ".", opts)
	if err != nil {
		return err
	}
	selected := make(map[string]bool, len(files))
	dirs := map[string]bool{}
	for _, name := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		selected[p] = true
		dirs[filepath.Dir(p)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
	}
	log.WithField(logfields.Count, len(dirs)).Info("Watching for changes")

	fset := token.NewFileSet()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Watcher error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			p := filepath.Clean(ev.Name)
			if !selected[p] && !(ev.Has(fsnotify.Create) && newFileSelected(dir, p, opts)) {
				continue
			}
			selected[p] = true
			scoped := log.WithFields(logrus.Fields{logfields.File: p, logfields.Event: ev.Op.String()})
			if err := rewriteOne(root, fset, dir, p, opts); err != nil {
				scoped.WithError(err).Warn("Rewrite failed")
			}
		}
	}
}

// newFileSelected reports whether a file created while watching would have
// been selected by the initial walk.
func newFileSelected(dir, p string, opts *parsers.ParseOptions) bool {
	if !strings.HasSuffix(p, ".go") {
		return false
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, rel, nil, fs.FileMode(0644)); err != nil {
		return false
	}
	got, err := parsers.GoFiles(afero.NewIOFS(mem), ".", opts)
	if err != nil {
		return false
	}
	return len(got) == 1
}

func rewriteOne(root afero.Fs, fset *token.FileSet, dir, p string, opts *parsers.ParseOptions) error {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return err
	}
	name := filepath.ToSlash(rel)
	c, err := planFile(root, fset, dir, name, opts)
	if err != nil || c == nil {
		return err
	}
	if err := writeFile(root, name, c.After); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{logfields.File: c.Path, logfields.Count: c.Fields}).Info("Rewrote")
	return nil
}
