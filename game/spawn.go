package game

import (
	"github.com/they4kman/cubesweep/geom"
)

// Spawn creates one concealed cell per grid coordinate, all sharing the
// pool's concealed visual. IDs follow i, j, k iteration order starting at 1.
func Spawn(dim Dimensions, pool *VisualPool) (*Cells, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}

	cells := &Cells{
		dim:   dim,
		cells: make([]*Cell, 0, dim.NumCells()),
	}
	concealed := pool.Visual(Concealed)

	for i := 0; i < dim.X; i++ {
		for j := 0; j < dim.Y; j++ {
			for k := 0; k < dim.Z; k++ {
				index := Index{i, j, k}
				pos := Position(index, dim)

				cells.cells = append(cells.cells, &Cell{
					id:       CellID(len(cells.cells) + 1),
					index:    index,
					position: pos,
					bounds:   geom.CubeBounds(pos, cellSize),
					visual:   concealed,
				})
			}
		}
	}

	return cells, nil
}
