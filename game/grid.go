package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Dimensions is the number of cells along each axis
type Dimensions struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

func (dim Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", dim.X, dim.Y, dim.Z)
}

func (dim Dimensions) NumCells() int {
	return dim.X * dim.Y * dim.Z
}

func (dim Dimensions) Validate() error {
	if dim.X <= 0 || dim.Y <= 0 || dim.Z <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDimensions, dim)
	}
	return nil
}

func (dim Dimensions) Contains(index Index) bool {
	return index.I >= 0 && index.J >= 0 && index.K >= 0 &&
		index.I < dim.X && index.J < dim.Y && index.K < dim.Z
}

func (dim Dimensions) linear(index Index) int {
	return (index.I*dim.Y+index.J)*dim.Z + index.K
}

// Position centers the grid on the origin: index - dim/2 per axis, with
// truncating integer division.
func Position(index Index, dim Dimensions) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(index.I - dim.X/2),
		float64(index.J - dim.Y/2),
		float64(index.K - dim.Z/2),
	}
}

// Grid is the read-only view of the spawned cells handed to collaborators
type Grid interface {
	Dimensions() Dimensions
	Cell(id CellID) (*Cell, bool)
	CellAt(index Index) (*Cell, bool)
	Cells() []*Cell
}

// Cells stores every cell of a round, ordered by ID
type Cells struct {
	dim   Dimensions
	cells []*Cell
}

func (cells *Cells) Dimensions() Dimensions {
	return cells.dim
}

func (cells *Cells) Len() int {
	return len(cells.cells)
}

func (cells *Cells) Cell(id CellID) (*Cell, bool) {
	if id == 0 || int(id) > len(cells.cells) {
		return nil, false
	}
	return cells.cells[id-1], true
}

func (cells *Cells) CellAt(index Index) (*Cell, bool) {
	if !cells.dim.Contains(index) {
		return nil, false
	}
	return cells.cells[cells.dim.linear(index)], true
}

func (cells *Cells) Cells() []*Cell {
	return cells.cells
}

// Concealed returns the cells which have not been revealed yet
func (cells *Cells) Concealed() []*Cell {
	concealed := make([]*Cell, 0, len(cells.cells))
	for _, cell := range cells.cells {
		if !cell.IsRevealed() {
			concealed = append(concealed, cell)
		}
	}
	return concealed
}
