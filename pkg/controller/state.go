package controller

// State is the explicit lifecycle of one form session.
//
//	Loading -> Ready <-> Submitting -> Confirmed
//	Loading -> LoadError (terminal)
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
	StateConfirmed
	StateLoadError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateLoadError:
		return "load_error"
	default:
		return "unknown"
	}
}
