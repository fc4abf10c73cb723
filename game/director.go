package game

import "math/rand"

// Director plays the game automatically, in place of pointer input
type Director interface {
	/**
	 * Initialize the director for a freshly spawned round
	 */
	Init(grid Grid, rand *rand.Rand)

	/**
	 * Perform a single step of actions, by queueing reveal requests
	 */
	Act(requests *EventQueue[RevealRequest])

	/**
	 * Stop acting
	 */
	End()
}
