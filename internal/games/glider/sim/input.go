package sim

// Input is one tick's worth of player intent, already translated from
// whatever device the host reads.
type Input struct {
	HasTarget bool    // Pointer modality: TargetX is an absolute position
	TargetX   float64
	Nudge     float64 // Keyboard modality: relative move
	Fire      int     // Number of fire presses this tick
}

// Apply feeds in to the world before the next Step.
// Pointer input wins over keyboard movement. Returns the number of
// projectiles actually launched.
func (w *World) Apply(in Input) int {
	w.mustBeInitialized()
	if !w.session.Running() {
		return 0
	}

	switch {
	case in.HasTarget:
		w.SetPlayerTargetX(in.TargetX)
	case in.Nudge != 0:
		w.NudgePlayer(in.Nudge)
	}

	launched := 0
	for i := 0; i < in.Fire; i++ {
		if w.Fire() {
			launched++
		}
	}
	return launched
}
