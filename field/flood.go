package field

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/cubesweep/game"
	"github.com/they4kman/cubesweep/util/collections"
)

type NeighborGetter func(game.Index) []game.Index

// Visitor is called once per reached cell, and returns whether the flood
// should continue through that cell's neighbors
type Visitor func(game.Index) bool

// flood visits cells breadth-first from start. It runs on the caller's
// goroutine so all reveals land in the same tick, in a stable order.
func flood(start game.Index, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[game.Index])
	var visitQueue deque.Deque

	enqueue := func(index game.Index) {
		// Don't visit, if already visited
		if visited.Contains(index) {
			return
		}
		visited.Add(index)
		visitQueue.PushBack(index)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		index := visitQueue.PopFront().(game.Index)

		if visit(index) {
			for _, neighbor := range getNeighbors(index) {
				enqueue(neighbor)
			}
		}
	}
}
