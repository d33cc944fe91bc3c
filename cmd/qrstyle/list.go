package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ggqr "github.com/gogpu/gg-qr"
	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

func newGeneratorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "generators [pixel|eye|pupil]",
		Short:     "List the shape generators",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(shape.CategoryPixel), string(shape.CategoryEye), string(shape.CategoryPupil)},
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := shape.Categories[:]
			if len(args) == 1 {
				categories = []shape.Category{shape.Category(args[0])}
			}
			w := cmd.OutOrStdout()
			for _, c := range categories {
				for _, d := range ggqr.ListGenerators(c) {
					fmt.Fprintf(w, "%-6s %-18s %s\n", c, d.Name, d.Title)
				}
			}
			return nil
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats and matrix engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "formats: %s\n", strings.Join(render.Backends(), ", "))
			fmt.Fprintf(w, "engines: %s\n", strings.Join(append([]string{"none"}, engine.Names()...), ", "))
		},
	}
}
