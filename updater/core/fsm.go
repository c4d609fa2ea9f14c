package core

// State is the stage of an update check cycle.
type State int

const (
	StateIdle State = iota
	StateManifest
	StateMetadata
	StateTokens
	StateTokenComplete
	StateComplete
	StateCanceled
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateManifest:      "manifest",
	StateMetadata:      "metadata",
	StateTokens:        "tokens",
	StateTokenComplete: "token_complete",
	StateComplete:      "complete",
	StateCanceled:      "canceled",
	StateFailed:        "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return ErrBadArguments
}

var transitions = map[State][]State{
	StateIdle:          {StateManifest, StateFailed},
	StateManifest:      {StateMetadata, StateComplete, StateFailed, StateCanceled},
	StateMetadata:      {StateTokens, StateTokenComplete, StateComplete, StateFailed, StateCanceled},
	StateTokens:        {StateTokenComplete, StateComplete, StateFailed, StateCanceled},
	StateTokenComplete: {StateTokens, StateComplete, StateFailed, StateCanceled},
	StateComplete:      {StateIdle},
	StateCanceled:      {StateIdle},
	StateFailed:        {StateIdle},
}

// CanTransition reports whether the cycle may move from one state to another.
func CanTransition(from, to State) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
