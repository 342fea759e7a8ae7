package governor

import "fmt"

// Run states for the governor FSM
const (
	StateNotStarted   State = "not_started"   // Governor created, callable not yet invoked
	StateRunning      State = "running"       // Callable executing under the boundary
	StateSucceeded    State = "succeeded"     // Callable returned normally
	StateAbortHandled State = "abort_handled" // Boundary consumed a controlled failure
	StatePropagating  State = "propagating"   // Failure handed to the finalizer
	StateFinalized    State = "finalized"     // Disposition decided; terminal
)

// State is the governor's run state
type State string

// validTransitions maps from-state to allowed to-states
var validTransitions = map[State]map[State]bool{
	StateNotStarted: {
		StateRunning: true, // NotStarted → Running (callable invoked)
	},
	StateRunning: {
		StateSucceeded:    true, // Running → Succeeded (voluntary return)
		StateAbortHandled: true, // Running → AbortHandled (boundary caught it)
		StatePropagating:  true, // Running → Propagating (boundary did not catch it)
		StateFinalized:    true, // Running → Finalized (ambient termination, e.g. signal)
	},
	StateSucceeded: {
		StateFinalized: true,
	},
	StateAbortHandled: {
		StateFinalized: true,
	},
	StatePropagating: {
		StateFinalized: true,
	},
	// Terminal state (no transitions allowed)
	StateFinalized: {},
}

// ValidateTransition checks if a state transition is valid
func ValidateTransition(from, to State) error {
	allowed, exists := validTransitions[from]
	if !exists {
		return fmt.Errorf("unknown source state: %s", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	return nil
}

// IsTerminalState returns true if the state is terminal
func IsTerminalState(state State) bool {
	return state == StateFinalized
}
