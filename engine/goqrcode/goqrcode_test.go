package goqrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/grid"
)

// finder checks the 7×7 finder pattern with its top-left cell at (r, c).
func finder(t *testing.T, g *grid.Grid, r, c int) {
	t.Helper()
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			ring := i == 0 || i == 6 || j == 0 || j == 6
			core := i >= 2 && i <= 4 && j >= 2 && j <= 4
			want := ring || core
			if got := g.At(r+i, c+j); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", r+i, c+j, got, want)
			}
		}
	}
}

func TestGenerateText(t *testing.T) {
	e := New()
	g, err := e.GenerateText("hello", engine.Medium)
	require.NoError(t, err)
	require.Equal(t, 21, g.Dimension())

	n := g.Dimension()
	finder(t, g, 0, 0)
	finder(t, g, 0, n-7)
	finder(t, g, n-7, 0)
}

func TestGenerateBytes(t *testing.T) {
	g, err := New().Generate([]byte{0x00, 0xff, 0x10}, engine.High)
	require.NoError(t, err)
	assert.Equal(t, 0, (g.Dimension()-17)%4, "QR dimensions are 17 + 4×version")
}

func TestHigherCorrectionNeverShrinks(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	low, err := New().GenerateText(text, engine.Low)
	require.NoError(t, err)
	high, err := New().GenerateText(text, engine.High)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, high.Dimension(), low.Dimension())
}

func TestEmpty(t *testing.T) {
	_, err := New().GenerateText("", engine.Low)
	assert.ErrorIs(t, err, engine.ErrEmptyData)
	_, err = New().Generate(nil, engine.Low)
	assert.ErrorIs(t, err, engine.ErrEmptyData)
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, engine.Names(), Name)
	e, err := engine.New(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, e.Name())
}
