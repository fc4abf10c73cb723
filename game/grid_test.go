package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name  string
		index Index
		dim   Dimensions
		want  mgl64.Vec3
	}{
		{
			name:  "odd grid center",
			index: Index{1, 1, 1},
			dim:   Dimensions{3, 3, 3},
			want:  mgl64.Vec3{0, 0, 0},
		},
		{
			name:  "even grid corner",
			index: Index{0, 0, 0},
			dim:   Dimensions{4, 4, 4},
			want:  mgl64.Vec3{-2, -2, -2},
		},
		{
			name:  "even grid far corner",
			index: Index{3, 3, 3},
			dim:   Dimensions{4, 4, 4},
			want:  mgl64.Vec3{1, 1, 1},
		},
		{
			name:  "mixed dimensions",
			index: Index{0, 2, 4},
			dim:   Dimensions{1, 2, 5},
			want:  mgl64.Vec3{0, 1, 2},
		},
		{
			name:  "single cell",
			index: Index{0, 0, 0},
			dim:   Dimensions{1, 1, 1},
			want:  mgl64.Vec3{0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Position(tt.index, tt.dim))
		})
	}
}

func TestPosition_AllIndexes(t *testing.T) {
	for _, dim := range []Dimensions{{2, 3, 4}, {5, 1, 6}, {7, 7, 7}} {
		for i := 0; i < dim.X; i++ {
			for j := 0; j < dim.Y; j++ {
				for k := 0; k < dim.Z; k++ {
					pos := Position(Index{i, j, k}, dim)
					assert.Equal(t, float64(i-dim.X/2), pos[0])
					assert.Equal(t, float64(j-dim.Y/2), pos[1])
					assert.Equal(t, float64(k-dim.Z/2), pos[2])
				}
			}
		}
	}
}

func TestDimensions_Validate(t *testing.T) {
	assert.NoError(t, Dimensions{1, 1, 1}.Validate())
	assert.ErrorIs(t, Dimensions{0, 1, 1}.Validate(), ErrInvalidDimensions)
	assert.ErrorIs(t, Dimensions{2, -1, 1}.Validate(), ErrInvalidDimensions)
}

func TestCells_Lookup(t *testing.T) {
	pool := newTestPool(t)
	cells, err := Spawn(Dimensions{2, 3, 4}, pool)
	require.NoError(t, err)

	for _, cell := range cells.Cells() {
		byID, ok := cells.Cell(cell.ID())
		require.True(t, ok)
		assert.Same(t, cell, byID)

		byIndex, ok := cells.CellAt(cell.Index())
		require.True(t, ok)
		assert.Same(t, cell, byIndex)
	}

	_, ok := cells.Cell(0)
	assert.False(t, ok)
	_, ok = cells.Cell(CellID(cells.Len() + 1))
	assert.False(t, ok)
	_, ok = cells.CellAt(Index{2, 0, 0})
	assert.False(t, ok)
	_, ok = cells.CellAt(Index{0, -1, 0})
	assert.False(t, ok)
}
