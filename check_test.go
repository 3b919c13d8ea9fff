package go_styledhelp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/proj/opts.go": optsSrc})

	var out bytes.Buffer
	err := Check(fs, "/proj", nil, nil, &out, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChangesPending))
	assert.Contains(t, err.Error(), "1 file(s)")

	diff := out.String()
	assert.True(t, strings.HasPrefix(diff, "--- /proj/opts.go\n+++ /proj/opts.go (rewritten)\n"), diff)
	assert.Contains(t, diff, "-\t// Path to the <c>config</> file.\n")
	assert.Contains(t, diff, "+\tRetries int    `arg:\"retries\" help:\"Number of retries.\"`\n")
	assert.Equal(t, optsSrc, readFile(t, fs, "/proj/opts.go"))
}

func TestCheckClean(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/proj/opts.go": optsWant})

	var out bytes.Buffer
	require.NoError(t, Check(fs, "/proj", nil, nil, &out, false))
	assert.Empty(t, out.String())
}

func TestColorizeDiff(t *testing.T) {
	in := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n same\n"
	got := colorizeDiff(in)
	assert.Contains(t, got, "--- a\n+++ b\n")
	assert.Contains(t, got, "old")
	assert.Contains(t, got, "new")
	assert.Contains(t, got, " same\n")
	assert.Equal(t, strings.Count(in, "\n"), strings.Count(got, "\n"))
}
