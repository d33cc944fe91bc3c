package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ggqr "github.com/gogpu/gg-qr"
	"github.com/gogpu/gg-qr/document"
)

func newDesignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Create and convert design files",
	}
	cmd.PersistentFlags().StringP("format", "f", "", "document format (yaml, toml, json); defaults to the file extension")
	cmd.AddCommand(
		&cobra.Command{
			Use:   "init [file]",
			Short: "Write the default design",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := "-"
				if len(args) == 1 {
					out = args[0]
				}
				return writeDesign(cmd, ggqr.NewDesign(), out)
			},
		},
		&cobra.Command{
			Use:   "convert <in> <out>",
			Short: "Normalize a design and write it in another format",
			Long: `convert reads a design, replacing unknown generators and unreadable
fills by their defaults, and writes it again. Use - as <out> for stdout.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := loadDesignFile(args[0])
				if err != nil {
					return err
				}
				return writeDesign(cmd, d, args[1])
			},
		},
	)
	return cmd
}

func writeDesign(cmd *cobra.Command, d *ggqr.Design, out string) error {
	name, _ := cmd.Flags().GetString("format")
	f := document.YAML
	switch {
	case name != "":
		var err error
		if f, err = document.ParseFormat(name); err != nil {
			return err
		}
	case out != "-":
		f = document.FormatFromPath(out)
	}

	if out == "-" {
		return saveDesign(d, cmd.OutOrStdout(), f)
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := saveDesign(d, file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func saveDesign(d *ggqr.Design, w io.Writer, f document.Format) error {
	if err := d.Save(w, f); err != nil {
		return fmt.Errorf("write design: %w", err)
	}
	return nil
}
