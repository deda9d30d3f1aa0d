package rental

import "strings"

// State of a rental as seen by listing filters.
type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
)

func (s State) String() string {
	return string(s)
}

func ParseState(s string) (State, error) {
	state := State(strings.ToLower(strings.TrimSpace(s)))
	switch state {
	case StateActive, StateCompleted:
		return state, nil
	default:
		return "", ErrInvalidState
	}
}
