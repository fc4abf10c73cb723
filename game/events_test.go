package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_Drain(t *testing.T) {
	var queue EventQueue[int]
	queue.Push(1)
	queue.Push(2)
	assert.Equal(t, []int{1, 2}, queue.Events())
	assert.Equal(t, 2, queue.Len())

	var seen []int
	drained := queue.Drain(func(event int) {
		seen = append(seen, event)
		// Events pushed while draining are delivered by the same drain
		if event == 1 {
			queue.Push(3)
		}
	})

	assert.Equal(t, 3, drained)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Zero(t, queue.Len())
	assert.Zero(t, queue.Drain(func(int) { t.Fatal("drained twice") }))
}

func TestEventQueue_Clear(t *testing.T) {
	var queue EventQueue[CellEvent]
	queue.Push(MarkEvent{Cell: 1})
	queue.Push(RevealEvent{Cell: 2, Content: MineContent()})

	queue.Clear()
	assert.Zero(t, queue.Len())
	assert.Empty(t, queue.Events())
}
