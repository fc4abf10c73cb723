package field

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/cubesweep/game"
	"github.com/they4kman/cubesweep/util/collections"
)

// Field is the authoritative mine layout of a round
type Field struct {
	numMines uint
	mode     game.GameMode

	grid game.Grid
	dim  game.Dimensions
	rand *rand.Rand

	mines    collections.Set[game.Index]
	revealed collections.Set[game.Index]
	// Safe cells not yet revealed; the round is won when this reaches zero
	remainingCells int

	hasRevealed bool
	phase       game.Phase

	log logrus.FieldLogger
}

func New(numMines uint, mode game.GameMode, log logrus.FieldLogger) *Field {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Field{
		numMines: numMines,
		mode:     mode,
		phase:    game.Starting,
		log:      log,
	}
}

// Reset lays out mines for a freshly spawned grid
func (field *Field) Reset(grid game.Grid, seed int64) {
	field.grid = grid
	field.dim = grid.Dimensions()
	field.rand = rand.New(rand.NewSource(seed))
	field.mines = make(collections.Set[game.Index])
	field.revealed = make(collections.Set[game.Index])
	field.hasRevealed = false

	// Store cell indexes, to shuffle and fill mines
	cells := grid.Cells()
	cellIndexes := make([]game.Index, len(cells))
	for i, cell := range cells {
		cellIndexes[i] = cell.Index()
	}
	field.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	numMines := int(field.numMines)
	if numMines > len(cellIndexes) {
		numMines = len(cellIndexes)
	}
	for _, index := range cellIndexes[:numMines] {
		field.mines.Add(index)
	}

	field.remainingCells = len(cellIndexes) - numMines
	field.phase = game.Ongoing
	if field.remainingCells == 0 {
		field.phase = game.Won
	}
}

func (field *Field) Phase() game.Phase {
	return field.phase
}

func (field *Field) NumMines() uint {
	return uint(len(field.mines))
}

func (field *Field) IsMine(index game.Index) bool {
	return field.mines.Contains(index)
}

// Neighbors returns up to 26 in-bounds cells sharing a face, edge or corner
// with index
func (field *Field) Neighbors(index game.Index) []game.Index {
	neighbors := make([]game.Index, 0, 26)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				neighbor := game.Index{I: index.I + di, J: index.J + dj, K: index.K + dk}
				if field.dim.Contains(neighbor) {
					neighbors = append(neighbors, neighbor)
				}
			}
		}
	}
	return neighbors
}

func (field *Field) AdjacentMines(index game.Index) uint {
	count := uint(0)
	for _, neighbor := range field.Neighbors(index) {
		if field.mines.Contains(neighbor) {
			count++
		}
	}
	return count
}

func (field *Field) Content(index game.Index) game.Content {
	if field.mines.Contains(index) {
		return game.MineContent()
	}
	return game.EmptyContent(field.AdjacentMines(index))
}

// Reveal answers a reveal request. Revealing a mine loses the round and
// reveals every unmarked mine; revealing a cell with no adjacent mines
// cascades through its unmarked neighbours.
func (field *Field) Reveal(request game.RevealRequest, events *game.EventQueue[game.CellEvent]) {
	log := field.log.WithFields(logrus.Fields{
		"cell":  request.Cell,
		"index": request.Index,
	})

	if field.phase != game.Ongoing {
		log.WithField("phase", field.phase).Debug("Ignoring reveal request, round is over")
		return
	}
	if !field.dim.Contains(request.Index) {
		log.Warn("Reveal request outside the field")
		return
	}
	if field.revealed.Contains(request.Index) {
		return
	}

	if !field.hasRevealed {
		field.hasRevealed = true

		if field.mode == game.Win7 {
			field.clearSurroundingMines(request.Index)
		}
	}

	if field.mines.Contains(request.Index) {
		field.lose(request, events)
		return
	}

	if field.AdjacentMines(request.Index) == 0 {
		field.cascadeEmpty(request, events)
	} else {
		field.reveal(request.Cell, request.Index, events)
	}

	if field.remainingCells == 0 {
		field.phase = game.Won
		log.Info("All safe cells revealed")
	}
}

func (field *Field) reveal(id game.CellID, index game.Index, events *game.EventQueue[game.CellEvent]) {
	if field.revealed.Contains(index) {
		return
	}
	field.revealed.Add(index)
	if !field.mines.Contains(index) {
		field.remainingCells--
	}
	events.Push(game.RevealEvent{Cell: id, Content: field.Content(index)})
}

func (field *Field) cascadeEmpty(request game.RevealRequest, events *game.EventQueue[game.CellEvent]) {
	flood(
		request.Index,
		func(index game.Index) bool {
			if index == request.Index {
				field.reveal(request.Cell, index, events)
				return true
			}

			cell, ok := field.grid.CellAt(index)
			if !ok || cell.IsMarked() || field.mines.Contains(index) {
				return false
			}
			field.reveal(cell.ID(), index, events)
			return field.AdjacentMines(index) == 0
		},
		field.Neighbors,
	)
}

func (field *Field) lose(request game.RevealRequest, events *game.EventQueue[game.CellEvent]) {
	field.phase = game.Lost
	field.log.WithFields(logrus.Fields{
		"cell":  request.Cell,
		"index": request.Index,
	}).Info("Mine revealed")

	field.reveal(request.Cell, request.Index, events)

	for _, cell := range field.grid.Cells() {
		index := cell.Index()
		if field.mines.Contains(index) && !cell.IsMarked() {
			field.reveal(cell.ID(), index, events)
		}
	}
}

// clearSurroundingMines moves any mines in or around index elsewhere, so the
// first reveal always opens a region. Mines stay put when there is no room.
func (field *Field) clearSurroundingMines(index game.Index) {
	safeZone := make(collections.Set[game.Index])
	safeZone.Add(index)
	for _, neighbor := range field.Neighbors(index) {
		safeZone.Add(neighbor)
	}

	var candidates []game.Index
	for _, cell := range field.grid.Cells() {
		candidate := cell.Index()
		if !safeZone.Contains(candidate) && !field.mines.Contains(candidate) {
			candidates = append(candidates, candidate)
		}
	}
	field.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	// Prefer clearing the clicked cell itself when room is short
	zone := append([]game.Index{index}, field.Neighbors(index)...)
	for _, cleared := range zone {
		if !field.mines.Contains(cleared) {
			continue
		}
		if len(candidates) == 0 {
			break
		}
		field.mines.Remove(cleared)
		field.mines.Add(candidates[0])
		candidates = candidates[1:]
	}
}
