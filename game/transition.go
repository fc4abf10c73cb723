package game

import (
	"github.com/sirupsen/logrus"
)

// Handler applies cell events and keeps each cell's attached visual in step
// with its state
type Handler struct {
	pool  *VisualPool
	cells Grid
	log   logrus.FieldLogger
}

func NewHandler(pool *VisualPool, cells Grid, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		pool:  pool,
		cells: cells,
		log:   log,
	}
}

// Handle drains events, applying each in order
func (handler *Handler) Handle(events *EventQueue[CellEvent]) int {
	return events.Drain(func(event CellEvent) {
		handler.Apply(event)
	})
}

// Apply performs a single transition. It reports whether the cell changed.
// Events for unknown cells are logged and skipped.
func (handler *Handler) Apply(event CellEvent) bool {
	id := event.CellID()
	cell, ok := handler.cells.Cell(id)
	if !ok {
		handler.log.WithField("cell", id).Warnf("Unable to retrieve cell for %v", event)
		return false
	}

	log := handler.log.WithFields(logrus.Fields{
		"cell":  id,
		"index": cell.index,
	})

	switch event := event.(type) {
	case RevealEvent:
		if cell.IsRevealed() {
			log.Debug("Cell already revealed")
			return false
		}
		cell.reveal(event.Content, handler.pool)
		log.WithField("content", event.Content).Info("Revealed cell")

	case MarkEvent:
		if cell.IsRevealed() {
			log.Debug("Ignoring mark of revealed cell")
			return false
		}
		cell.toggleMarked(handler.pool)
		if cell.marked {
			log.Debug("Mark cell as mine")
		} else {
			log.Debug("Unmark cell as mine")
		}

	default:
		log.Warnf("Unhandled cell event %T", event)
		return false
	}

	return true
}
