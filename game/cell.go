package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/they4kman/cubesweep/geom"
)

// CellID identifies a cell within one round. Zero is never a valid ID.
type CellID uint32

// Index is a cell's integer grid coordinate
type Index struct {
	I, J, K int
}

func (index Index) String() string {
	return fmt.Sprintf("(%d, %d, %d)", index.I, index.J, index.K)
}

// Content is what a cell turns out to hold once revealed
type Content struct {
	IsMine        bool
	AdjacentMines uint
}

func MineContent() Content {
	return Content{IsMine: true}
}

func EmptyContent(adjacentMines uint) Content {
	return Content{AdjacentMines: adjacentMines}
}

func (content Content) String() string {
	if content.IsMine {
		return "Mine"
	}
	return fmt.Sprintf("Empty(%d)", content.AdjacentMines)
}

// Variant buckets adjacent-mine counts above four into Number5.
func (content Content) Variant() Variant {
	switch {
	case content.IsMine:
		return Mine
	case content.AdjacentMines == 0:
		return Empty
	case content.AdjacentMines >= 5:
		return Number5
	default:
		return Number1 + Variant(content.AdjacentMines-1)
	}
}

// VariantFor is the single source of truth for which look a cell state has
func VariantFor(marked bool, revealed *Content) Variant {
	switch {
	case revealed != nil:
		return revealed.Variant()
	case marked:
		return Marked
	default:
		return Concealed
	}
}

type Cell struct {
	id       CellID
	index    Index
	position mgl64.Vec3
	bounds   geom.Bounds

	marked   bool
	revealed *Content

	visual Visual
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell#%d%v", cell.id, cell.index)
}

func (cell *Cell) ID() CellID {
	return cell.id
}

func (cell *Cell) Index() Index {
	return cell.index
}

func (cell *Cell) Position() mgl64.Vec3 {
	return cell.position
}

func (cell *Cell) Bounds() geom.Bounds {
	return cell.bounds
}

func (cell *Cell) IsMarked() bool {
	return cell.marked
}

func (cell *Cell) IsRevealed() bool {
	return cell.revealed != nil
}

func (cell *Cell) Content() (Content, bool) {
	if cell.revealed == nil {
		return Content{}, false
	}
	return *cell.revealed, true
}

func (cell *Cell) Variant() Variant {
	return VariantFor(cell.marked, cell.revealed)
}

// Visual returns the pool handles currently attached to the cell
func (cell *Cell) Visual() Visual {
	return cell.visual
}

func (cell *Cell) reveal(content Content, pool *VisualPool) {
	cell.revealed = &content
	cell.marked = false
	cell.visual = pool.VisualFor(cell.marked, cell.revealed)
}

func (cell *Cell) toggleMarked(pool *VisualPool) {
	cell.marked = !cell.marked
	cell.visual = pool.VisualFor(cell.marked, cell.revealed)
}
