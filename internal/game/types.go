package game

// State is the lifecycle state of the game loop.
type State int

const (
	// StateRunning means frames are still being produced.
	StateRunning State = iota
	// StateStopped is terminal; the next Update reports termination.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// BounceListener is notified when the obstacle changes direction.
type BounceListener interface {
	OnBounce()
}
