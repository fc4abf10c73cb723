package game

import (
	"fmt"

	"github.com/gammazero/deque"
)

// RevealRequest asks the Field what a cell holds
type RevealRequest struct {
	Cell  CellID
	Index Index
}

// CellEvent is an intent targeting a single cell, applied by Handler
type CellEvent interface {
	CellID() CellID
}

// RevealEvent carries the Field's answer to a RevealRequest
type RevealEvent struct {
	Cell    CellID
	Content Content
}

func (event RevealEvent) CellID() CellID {
	return event.Cell
}

func (event RevealEvent) String() string {
	return fmt.Sprintf("Reveal(%d, %v)", event.Cell, event.Content)
}

// MarkEvent toggles a concealed cell's mark
type MarkEvent struct {
	Cell CellID
}

func (event MarkEvent) CellID() CellID {
	return event.Cell
}

func (event MarkEvent) String() string {
	return fmt.Sprintf("Mark(%d)", event.Cell)
}

// EventQueue is a FIFO of events produced during a tick. The zero value is
// ready to use.
type EventQueue[E any] struct {
	events deque.Deque
}

func (queue *EventQueue[E]) Push(event E) {
	queue.events.PushBack(event)
}

func (queue *EventQueue[E]) Len() int {
	return queue.events.Len()
}

// Drain hands every queued event to handle, oldest first, and leaves the
// queue empty. Events pushed by handle are delivered by the same Drain.
func (queue *EventQueue[E]) Drain(handle func(E)) int {
	drained := 0
	for queue.events.Len() > 0 {
		event := queue.events.PopFront().(E)
		handle(event)
		drained++
	}
	return drained
}

// Events returns the queued events without removing them
func (queue *EventQueue[E]) Events() []E {
	events := make([]E, queue.events.Len())
	for i := range events {
		events[i] = queue.events.At(i).(E)
	}
	return events
}

func (queue *EventQueue[E]) Clear() {
	for queue.events.Len() > 0 {
		queue.events.PopFront()
	}
}
