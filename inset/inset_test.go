package inset

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	g := Fixed{}
	assert.Equal(t, FixedName, g.Name())
	for _, rc := range [][2]int{{0, 0}, {5, 9}, {100, 3}} {
		assert.Equal(t, 1.0, g.Value(rc[0], rc[1]))
	}
	assert.Equal(t, Generator(Fixed{}), g.Clone())
}

func TestRandomVariesBetweenCells(t *testing.T) {
	g := Random{}
	seen := make(map[float64]bool)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			seen[g.Value(row, col)] = true
		}
	}
	if len(seen) < 90 {
		t.Errorf("Random produced only %d distinct values for 100 cells", len(seen))
	}
}

func TestNamed(t *testing.T) {
	g, ok := Named("random")
	assert.True(t, ok)
	assert.True(t, IsRandom(g))

	g, ok = Named("fixed")
	assert.True(t, ok)
	assert.False(t, IsRandom(g))

	_, ok = Named("perlin")
	assert.False(t, ok)

	assert.Equal(t, []string{"fixed", "random"}, Names())
}

func TestRotation(t *testing.T) {
	tests := []struct {
		name      string
		fraction  float64
		useRandom bool
		want      float64
	}{
		{"zero", 0, false, 0},
		{"negative", -1, true, 0},
		{"quarter", 0.25, false, math.Pi / 2},
		{"half", 0.5, false, math.Pi},
		{"full turn wraps", 1, false, 0},
		{"clamped", 3, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotation(tt.fraction, tt.useRandom, 4, 7)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Rotation(%v, %v) = %v, want %v", tt.fraction, tt.useRandom, got, tt.want)
			}
		})
	}
}

func TestRandomRotationWithinFraction(t *testing.T) {
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			a := Rotation(0.3, true, row, col)
			if a < 0 || a > 0.3*2*math.Pi {
				t.Fatalf("Rotation(0.3, true, %d, %d) = %v, outside [0, 0.6π]", row, col, a)
			}
		}
	}
}

func TestSampleProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sample is deterministic", prop.ForAll(
		func(row, col int) bool {
			return Sample(row, col, saltInset) == Sample(row, col, saltInset)
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 500),
	))

	properties.Property("sample is within [0, 1)", prop.ForAll(
		func(row, col int) bool {
			v := Random{}.Value(row, col)
			return v >= 0 && v < 1
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
	))

	properties.Property("inset and rotation streams differ", prop.ForAll(
		func(row, col int) bool {
			return Sample(row, col, saltInset) != Sample(row, col, saltRotation)
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
