package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	styledhelp "github.com/arran4/go-styledhelp"
)

func newRenderCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Preview styled help markup",
		Long:  "Render prints the given text, or stdin when no text is given, with its style markup applied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimRight(string(b), "\n")
			}
			return styledhelp.Render(cmd.OutOrStdout(), text, color)
		},
	}
	cmd.Flags().StringVar(&color, "color", styledhelp.ColorAuto, "Colorize the output: auto, always or never")
	return cmd
}
