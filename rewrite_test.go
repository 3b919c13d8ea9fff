package go_styledhelp

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

const optsSrc = `package opts

//styledhelp:generate
type Options struct {
	// Path to the <c>config</> file.
	Config string ` + "`arg:\"config\"`" + `
	// Number of retries.
	Retries int ` + "`arg:\"retries\"`" + `
	Quiet   bool ` + "`arg:\"quiet\" help:\"No output.\"`" + `
}

type Other struct {
	// Left alone.
	Value string
}
`

const optsWant = `package opts

//styledhelp:generate
type Options struct {
	Config  string ` + "`arg:\"config\" help:\"Path to the <c>config</> file.\" helpfmt:\"cstr\"`" + `
	Retries int    ` + "`arg:\"retries\" help:\"Number of retries.\"`" + `
	Quiet   bool   ` + "`arg:\"quiet\" help:\"No output.\"`" + `
}

type Other struct {
	// Left alone.
	Value string
}
`

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return fs
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(b)
}

func TestRewrite(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/proj/go.mod":       "module example.com/proj\n",
		"/proj/opts/opts.go": optsSrc,
	})

	changes, err := Rewrite(fs, "/proj", nil, nil, false)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Path != "/proj/opts/opts.go" {
		t.Errorf("unexpected path %q", changes[0].Path)
	}
	if changes[0].Fields != 2 {
		t.Errorf("expected 2 rewritten fields, got %d", changes[0].Fields)
	}
	if got := readFile(t, fs, "/proj/opts/opts.go"); got != optsWant {
		t.Errorf("unexpected output:\n%s", got)
	}

	changes, err = Rewrite(fs, "/proj", nil, nil, false)
	if err != nil {
		t.Fatalf("second Rewrite failed: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("expected second pass to change nothing, got %d changes", len(changes))
	}
}

func TestRewriteDryRun(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/proj/opts.go": optsSrc})

	changes, err := Rewrite(fs, "/proj", nil, nil, true)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if len(changes) != 1 || string(changes[0].After) != optsWant {
		t.Fatalf("unexpected planned changes: %+v", changes)
	}
	if got := readFile(t, fs, "/proj/opts.go"); got != optsSrc {
		t.Errorf("dry run modified the file:\n%s", got)
	}
}

func TestRewritePaths(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/proj/a/opts.go": optsSrc,
		"/proj/b/opts.go": optsSrc,
	})

	if _, err := Rewrite(fs, "/proj", []string{"a"}, nil, false); err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if got := readFile(t, fs, "/proj/a/opts.go"); got != optsWant {
		t.Errorf("a/opts.go was not rewritten:\n%s", got)
	}
	if got := readFile(t, fs, "/proj/b/opts.go"); got != optsSrc {
		t.Errorf("b/opts.go should be untouched:\n%s", got)
	}
}

func TestRewriteExclude(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/proj/opts.go":     optsSrc,
		"/proj/gen/opts.go": optsSrc,
	})
	cfg := DefaultConfig()
	cfg.Exclude = []string{"gen/**"}

	changes, err := Rewrite(fs, "/proj", nil, cfg, false)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if len(changes) != 1 || changes[0].Path != "/proj/opts.go" {
		t.Fatalf("unexpected changes: %+v", changes)
	}
}

func TestRewriteNoFiles(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/proj/README.md": "hi\n"})

	_, err := Rewrite(fs, "/proj", nil, nil, false)
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestRewriteSyntaxError(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/proj/bad.go": "package bad\n\nfunc {\n"})

	if _, err := Rewrite(fs, "/proj", nil, nil, false); err == nil {
		t.Fatal("expected a parse error")
	}
}
