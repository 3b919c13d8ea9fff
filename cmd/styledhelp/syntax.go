package main

import (
	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: "Print the comment and tag forms styledhelp understands",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return styledhelp.HelpSyntax(cmd.OutOrStdout())
		},
	}
}
