package main

import (
	"errors"
	"fmt"
	"os"

	styledhelp "github.com/arran4/go-styledhelp"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes. check exits with exitPending so scripts can tell pending
// rewrites from failures.
const (
	exitError   = 1
	exitPending = 3
)

func main() {
	root := NewRoot(version, commit, date)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, styledhelp.ErrChangesPending) {
		return exitPending
	}
	return exitError
}
