package random

import (
	"math/rand"

	"github.com/they4kman/cubesweep/game"
)

// Director reveals concealed, unmarked cells in a random order
type Director struct {
	grid  game.Grid
	order []*game.Cell
	done  bool
}

func (director *Director) Init(grid game.Grid, rand *rand.Rand) {
	director.grid = grid
	director.done = false

	cells := grid.Cells()
	director.order = make([]*game.Cell, len(cells))
	copy(director.order, cells)

	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act(requests *game.EventQueue[game.RevealRequest]) {
	if director.done {
		return
	}

	for _, cell := range director.order {
		if !cell.IsRevealed() && !cell.IsMarked() {
			requests.Push(game.RevealRequest{Cell: cell.ID(), Index: cell.Index()})
			return
		}
	}
}

func (director *Director) End() {
	director.done = true
}
