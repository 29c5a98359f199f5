package viewer

import (
	"image"

	"magnifier/lens"
)

// Tracker owns the pointer position. It is touched only from the event loop
// goroutine, frames read it through Snapshot.
type Tracker struct {
	params  lens.Params
	pos     image.Point
	known   bool
	pending bool
}

func NewTracker(p lens.Params) *Tracker {
	return &Tracker{params: p}
}

// PointerMoved records a new pointer position. It returns true when the
// caller should request a repaint, false when one is already pending.
func (t *Tracker) PointerMoved(x, y int) bool {
	t.pos = image.Pt(x, y)
	t.known = true
	if t.pending {
		return false
	}
	t.pending = true
	return true
}

// Snapshot returns the lens state for the next frame and clears the pending
// repaint.
func (t *Tracker) Snapshot() lens.State {
	t.pending = false
	return lens.State{
		Params: t.params,
		Pos:    t.pos,
		Known:  t.known,
	}
}
