package parsers

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

var skippedDirs = map[string]bool{
	"testdata": true,
	"vendor":   true,
	".git":     true,
}

// GoFiles returns the sorted slash separated paths of the Go files under root
// selected by opts. Nested modules, vendor, testdata and hidden directories
// are skipped.
func GoFiles(fsys fs.FS, root string, opts *ParseOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultParseOptions()
	}
	var excludes []glob.Glob
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}
	excluded := func(p string) bool {
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		for _, g := range excludes {
			if g.Match(rel) || g.Match(p) {
				return true
			}
		}
		return false
	}

	starts := []string{root}
	if len(opts.SearchPaths) > 0 {
		starts = starts[:0]
		for _, p := range opts.SearchPaths {
			starts = append(starts, path.Join(root, p))
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, start := range starts {
		err := fs.WalkDir(fsys, start, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p == start {
					return nil
				}
				name := d.Name()
				if skippedDirs[name] || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || excluded(p) {
					return fs.SkipDir
				}
				if !opts.Recursive {
					return fs.SkipDir
				}
				if _, err := fs.Stat(fsys, path.Join(p, "go.mod")); err == nil {
					return fs.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(p, ".go") || excluded(p) || seen[p] {
				return nil
			}
			seen[p] = true
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
