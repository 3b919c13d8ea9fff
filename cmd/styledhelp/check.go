package main

import (
	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newCheckCmd(a *app) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Fail when any field doc comment still needs rewriting",
		Long:  "Check prints a unified diff of every pending rewrite and exits non-zero when there is one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return styledhelp.Check(a.fs, a.dir(), args, a.cfg, out, styledhelp.UseColor(out, color))
		},
	}
	cmd.Flags().StringVar(&color, "color", styledhelp.ColorAuto, "Colorize the diff: auto, always or never")
	return cmd
}
