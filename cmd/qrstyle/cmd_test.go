package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-qr/document"
	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/render"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerators(t *testing.T) {
	out, err := run(t, "generators", "pupil")
	require.NoError(t, err)
	assert.Contains(t, out, "dots")
	assert.NotContains(t, out, "arrow")

	out, err = run(t, "generators")
	require.NoError(t, err)
	assert.Contains(t, out, "arrow")
	assert.Contains(t, out, "peacock")

	_, err = run(t, "generators", "colour")
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "formats: pdf, png, svg")
	assert.Contains(t, out, "goqrcode")
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.svg")

	_, err := run(t, "render", "hello", "-o", path, "--size", "210", "--pixel", "circle")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="210"`)
	assert.Contains(t, string(data), "<path")
}

func TestRenderPNGToStdout(t *testing.T) {
	out, err := run(t, "render", "hello", "--size", "64", "--ec", "H")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestRenderDataFile(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(payload, []byte{0, 1, 2, 0xff}, 0o600))

	out, err := run(t, "render", "--data-file", payload, "-f", "pdf", "--size", "100")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix([]byte(out), []byte("%PDF")))
}

func TestRenderEnvironment(t *testing.T) {
	t.Setenv("GGQR_SIZE", "123")
	out, err := run(t, "render", "hello", "-f", "svg")
	require.NoError(t, err)
	assert.Contains(t, out, `width="123"`)
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "qrstyle.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("size: 99\nformat: svg\nlog-level: error\n"), 0o600))

	out, err := run(t, "render", "hello", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `width="99"`)

	_, err = run(t, "render", "hello", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderDesignFile(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(design, []byte(`
version: 1
shape:
  eye:
    name: crt
style:
  background:
    type: none
  onPixels:
    color: "#1d3557"
`), 0o600))

	out, err := run(t, "render", "hello", "--design", design, "-f", "svg", "--size", "100")
	require.NoError(t, err)
	assert.Contains(t, out, `fill="#1d3557"`)
	assert.NotContains(t, out, `fill="#ffffff"`)
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "render")
	assert.ErrorIs(t, err, errNoContent)

	_, err = run(t, "render", "hello", "--engine", "none")
	assert.ErrorIs(t, err, engine.ErrNoGenerator)

	_, err = run(t, "render", "hello", "-f", "gif")
	assert.ErrorIs(t, err, render.ErrUnknownBackend)

	// The format is checked before anything is encoded.
	_, err = run(t, "render", "hello", "--engine", "none", "-o", filepath.Join(t.TempDir(), "x.gif"))
	assert.ErrorIs(t, err, render.ErrUnknownBackend)
	assert.NotErrorIs(t, err, engine.ErrNoGenerator)

	_, err = run(t, "render", "hello", "--ec", "Z")
	assert.Error(t, err)

	_, err = run(t, "render", "hello", "--log-level", "loud")
	assert.Error(t, err)
}

func TestDesignInitAndConvert(t *testing.T) {
	dir := t.TempDir()
	toml := filepath.Join(dir, "design.toml")
	json := filepath.Join(dir, "design.json")

	_, err := run(t, "design", "init", toml)
	require.NoError(t, err)
	_, err = run(t, "design", "convert", toml, json)
	require.NoError(t, err)

	data, err := os.ReadFile(json)
	require.NoError(t, err)
	d, err := document.Unmarshal(data, document.JSON)
	require.NoError(t, err)
	assert.Equal(t, document.Version, d.Version)
	assert.Equal(t, "square", d.Shape.OnPixels.Name)
	assert.Equal(t, "#ffffff", d.Style.Background.Color)

	out, err := run(t, "design", "convert", json, "-", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "onPixels:")

	_, err = run(t, "design", "init", "-", "--format", "xml")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}
