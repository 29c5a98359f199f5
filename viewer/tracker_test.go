package viewer

import (
	"image"
	"testing"

	"magnifier/lens"
)

func TestTracker_StartsUnknown(t *testing.T) {
	tr := NewTracker(lens.Params{Radius: 10, Scale: 2})
	st := tr.Snapshot()
	if st.Known {
		t.Error("new tracker reports a known position")
	}
	if st.Radius != 10 || st.Scale != 2 {
		t.Errorf("params = %+v, want radius 10 scale 2", st.Params)
	}
}

func TestTracker_CoalescesRepaints(t *testing.T) {
	tr := NewTracker(lens.Params{Radius: 1, Scale: 1})

	if !tr.PointerMoved(3, 4) {
		t.Error("first move should request a repaint")
	}
	if tr.PointerMoved(5, 6) {
		t.Error("second move before a frame should not request another repaint")
	}

	st := tr.Snapshot()
	if !st.Known || st.Pos != image.Pt(5, 6) {
		t.Errorf("snapshot = %+v, want known at (5,6)", st)
	}

	if !tr.PointerMoved(7, 8) {
		t.Error("move after a frame should request a repaint")
	}
}

func TestTracker_SnapshotIsACopy(t *testing.T) {
	tr := NewTracker(lens.Params{Radius: 1, Scale: 1})
	tr.PointerMoved(1, 1)
	st := tr.Snapshot()
	tr.PointerMoved(9, 9)
	if st.Pos != image.Pt(1, 1) {
		t.Errorf("snapshot changed to %v after a later move", st.Pos)
	}
}

func TestTracker_AcceptsEdgePositions(t *testing.T) {
	tr := NewTracker(lens.Params{Radius: 1, Scale: 1})
	tr.PointerMoved(-4, -2)
	if st := tr.Snapshot(); !st.Known || st.Pos != image.Pt(-4, -2) {
		t.Errorf("snapshot = %+v, want known at (-4,-2)", st)
	}
}
