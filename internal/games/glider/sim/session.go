package sim

// Status is the session lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session tracks score and Running/Ended status, independent of entity contents.
//
// Running moves to Ended on a terminal collision; only Reset moves it back.
// Score never decreases and is frozen once the session has ended.
type Session struct {
	Score  int
	Status Status
}

// Running reports whether the simulation should advance.
func (s Session) Running() bool {
	return s.Status == StatusRunning
}

// Award adds points while running. Negative awards are ignored.
func (s *Session) Award(points int) {
	if !s.Running() || points <= 0 {
		return
	}
	s.Score += points
}

// End transitions to Ended. Ending twice is a no-op.
func (s *Session) End() {
	s.Status = StatusEnded
}

// Reset returns to a fresh Running session with zero score.
func (s *Session) Reset() {
	s.Score = 0
	s.Status = StatusRunning
}
