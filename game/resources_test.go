package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func newTestPool(t *testing.T) *VisualPool {
	t.Helper()
	pool, err := NewVisualPool(nil)
	require.NoError(t, err)
	return pool
}

func TestNewVisualPool(t *testing.T) {
	pool := newTestPool(t)

	// One cube shared by concealed and marked, five count spheres, one mine
	assert.Equal(t, 7, pool.NumMeshes())
	// Every variant but Empty has its own material
	assert.Equal(t, 8, pool.NumMaterials())

	concealed, marked := pool.Visual(Concealed), pool.Visual(Marked)
	assert.Equal(t, concealed.Mesh, marked.Mesh)
	assert.NotEqual(t, concealed.Material, marked.Material)

	assert.True(t, pool.Visual(Empty).IsEmpty())

	seen := make(map[Visual]Variant)
	for _, variant := range Variants {
		visual := pool.Visual(variant)
		if other, duplicate := seen[visual]; duplicate {
			t.Errorf("%v and %v share visual %+v", variant, other, visual)
		}
		seen[visual] = variant

		if variant == Empty {
			continue
		}
		_, ok := pool.Mesh(visual.Mesh)
		assert.True(t, ok, "mesh for %v", variant)
		_, ok = pool.Material(visual.Material)
		assert.True(t, ok, "material for %v", variant)
	}

	shape, ok := pool.Mesh(concealed.Mesh)
	require.True(t, ok)
	assert.Equal(t, Shape{Kind: ShapeCube, Size: 1}, shape)

	material, ok := pool.Material(marked.Material)
	require.True(t, ok)
	assert.Equal(t, colornames.Red, material.Color)

	_, ok = pool.Mesh(NoMesh)
	assert.False(t, ok)
	_, ok = pool.Material(MaterialHandle(pool.NumMaterials() + 1))
	assert.False(t, ok)
}

func TestNewVisualPool_Palette(t *testing.T) {
	pool, err := NewVisualPool(Palette{"marked": "gold"})
	require.NoError(t, err)

	material, ok := pool.Material(pool.Visual(Marked).Material)
	require.True(t, ok)
	assert.Equal(t, colornames.Gold, material.Color)

	// Variants missing from the palette fall back to the defaults
	material, ok = pool.Material(pool.Visual(Mine).Material)
	require.True(t, ok)
	assert.Equal(t, colornames.Darkgray, material.Color)

	_, err = NewVisualPool(Palette{"marked": "notacolor"})
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = NewVisualPool(Palette{"flagged": "red"})
	assert.ErrorIs(t, err, ErrInvalidPalette)

	_, err = NewVisualPool(Palette{"empty": "red"})
	assert.ErrorIs(t, err, ErrInvalidPalette)
}

func TestVariantFor(t *testing.T) {
	content := func(c Content) *Content { return &c }

	tests := []struct {
		name     string
		marked   bool
		revealed *Content
		want     Variant
	}{
		{name: "concealed", want: Concealed},
		{name: "marked", marked: true, want: Marked},
		{name: "mine", revealed: content(MineContent()), want: Mine},
		{name: "empty", revealed: content(EmptyContent(0)), want: Empty},
		{name: "one", revealed: content(EmptyContent(1)), want: Number1},
		{name: "four", revealed: content(EmptyContent(4)), want: Number4},
		{name: "five", revealed: content(EmptyContent(5)), want: Number5},
		{name: "saturates", revealed: content(EmptyContent(26)), want: Number5},
		{name: "revealed wins over mark", marked: true, revealed: content(EmptyContent(2)), want: Number2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VariantFor(tt.marked, tt.revealed))
		})
	}
}

func TestParseVariant(t *testing.T) {
	for _, variant := range Variants {
		parsed, err := ParseVariant(variant.String())
		require.NoError(t, err)
		assert.Equal(t, variant, parsed)
	}
	_, err := ParseVariant("number6")
	assert.Error(t, err)
}
