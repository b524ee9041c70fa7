package planner

// State is a stage of a planning run.
type State int

const (
	StatePlanning State = iota
	StateResearching
	StateAssigning
	StateValidating
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePlanning:
		return "planning"
	case StateResearching:
		return "researching"
	case StateAssigning:
		return "assigning"
	case StateValidating:
		return "validating"
	case StateDone:
		return "done"
	}
	return "unknown"
}
