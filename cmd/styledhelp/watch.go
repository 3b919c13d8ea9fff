package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rewrite files whenever they are saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return styledhelp.Watch(ctx, a.fs, a.dir(), a.cfg)
		},
	}
}
