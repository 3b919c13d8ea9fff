package main

import (
	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List opted-in structs and the help each field gets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return styledhelp.Scan(a.fs, a.dir(), a.cfg, cmd.OutOrStdout())
		},
	}
}
