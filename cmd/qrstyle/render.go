package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ggqr "github.com/gogpu/gg-qr"
	"github.com/gogpu/gg-qr/document"
	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

var errNoContent = errors.New("nothing to encode: pass text or --data-file")

func newRenderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render text or data as a styled symbol",
		Example: `  qrstyle render "https://example.com" -o code.svg
  qrstyle render --data-file payload.bin --ec H -o code.pdf
  qrstyle render "hello" --design brand.yaml --pixel circle -o code.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "-", "output file, - for stdout")
	f.StringP("format", "f", "", "output format (png, svg, pdf); defaults to the output file extension")
	f.IntP("size", "s", 600, "side length of the output in pixels")
	f.String("design", "", "design file (yaml, toml or json)")
	f.String("engine", "goqrcode", "matrix engine")
	f.String("ec", "M", "error correction level (L, M, Q, H)")
	f.String("data-file", "", "encode the bytes of this file instead of text")
	f.String("pixel", "", "on-pixel generator, overriding the design")
	f.String("eye", "", "eye generator, overriding the design")
	f.String("pupil", "", "pupil generator, overriding the design")
	for _, key := range []string{"format", "size", "design", "engine", "ec"} {
		a.bind(f, key)
	}
	return cmd
}

func (a *app) render(cmd *cobra.Command, args []string) error {
	v := a.v
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	dataFile, _ := flags.GetString("data-file")

	format := outputFormat(v.GetString("format"), output)
	if !render.IsRegistered(format) {
		return fmt.Errorf("%w %q (available: %s)",
			render.ErrUnknownBackend, format, strings.Join(render.Backends(), ", "))
	}

	design, err := loadDesignFile(v.GetString("design"))
	if err != nil {
		return err
	}
	if name, _ := flags.GetString("pixel"); name != "" {
		design.Shape.OnPixels = shape.CreatePixel(name, nil)
	}
	if name, _ := flags.GetString("eye"); name != "" {
		design.Shape.Eye = shape.CreateEye(name, nil)
	}
	if name, _ := flags.GetString("pupil"); name != "" {
		design.Shape.Pupil = shape.CreatePupil(name, nil)
	}

	e, err := engine.New(v.GetString("engine"))
	if err != nil {
		return err
	}
	ec, err := engine.ParseErrorCorrection(v.GetString("ec"))
	if err != nil {
		return err
	}
	doc := ggqr.NewDocument(ggqr.WithEngine(e), ggqr.WithErrorCorrection(ec), ggqr.WithDesign(design))

	switch {
	case dataFile != "":
		data, err := os.ReadFile(dataFile)
		if err != nil {
			return err
		}
		if err := doc.SetData(data); err != nil {
			return err
		}
	case len(args) == 1:
		if err := doc.SetText(args[0]); err != nil {
			return err
		}
	default:
		return errNoContent
	}

	out, err := doc.Bytes(format, v.GetInt("size"))
	if err != nil {
		return err
	}
	if output == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	ggqr.Logger().Info("qrstyle: wrote symbol",
		"path", output, "format", format, "dimension", doc.Grid().Dimension())
	return nil
}

// outputFormat returns format, or the extension of output when format is
// empty. Standard output without a format gets PNG.
func outputFormat(format, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" && output != "-" {
		return strings.ToLower(ext)
	}
	return ggqr.FormatPNG
}

// loadDesignFile reads a design, picking the format from the extension.
// An empty path yields the default design.
func loadDesignFile(path string) (*ggqr.Design, error) {
	if path == "" {
		return ggqr.NewDesign(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ggqr.LoadDesign(f, document.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
