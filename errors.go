package go_styledhelp

import "errors"

// ErrChangesPending is returned by Check when at least one file would be rewritten.
var ErrChangesPending = errors.New("help comments need rewriting")

// ErrNoFiles is returned when the selected paths hold no Go files.
var ErrNoFiles = errors.New("no Go files found")
