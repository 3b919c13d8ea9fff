package main

import (
	"fmt"

	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newRewriteCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "rewrite [paths...]",
		Short: "Rewrite field doc comments into help tags",
		Long: "Rewrite moves the doc comments of opted-in struct fields into help struct tags. " +
			"Paths are relative to --dir and default to all of it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := styledhelp.Rewrite(a.fs, a.dir(), args, a.cfg, dryRun)
			if err != nil {
				return err
			}
			for _, c := range changes {
				verb := "rewrote"
				if dryRun {
					verb = "would rewrite"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d fields)\n", verb, c.Path, c.Fields)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report the files that would change without writing them")
	return cmd
}
