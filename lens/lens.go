// Package lens implements the magnifying glass: the dimmed background that is
// prepared once at load time, and the per-frame compositor that replaces a
// circular window around the pointer with a zoomed sample of the source image.
//
// All images are *image.NRGBA anchored at (0,0). The background and the source
// must have identical bounds.
package lens

import (
	"errors"
	"fmt"
	"image"
	"math"
)

const (
	DefaultRadius     = 75
	DefaultScale      = 1.0
	DefaultBrightness = 0.75
)

var (
	ErrNoImage      = errors.New("no image")
	ErrBrightness   = errors.New("invalid brightness")
	ErrSizeMismatch = errors.New("background and source sizes differ")
)

// Params are the lens settings fixed at startup.
type Params struct {
	Radius int
	Scale  float64
}

func (p Params) Validate() error {
	if p.Radius < 1 {
		return fmt.Errorf("invalid radius %d: must be at least 1", p.Radius)
	}
	if !(p.Scale > 0) || math.IsInf(p.Scale, 0) {
		return fmt.Errorf("invalid scale %v: must be a finite number above 0", p.Scale)
	}
	return nil
}

// State is a snapshot of everything a frame needs. Known is false until the
// pointer has been seen, in which case no lens is drawn.
type State struct {
	Params
	Pos   image.Point
	Known bool
}

// Bounds returns the 2r x 2r bounding box of the lens in image coordinates.
func (s State) Bounds() image.Rectangle {
	r := s.Radius
	return image.Rect(s.Pos.X-r, s.Pos.Y-r, s.Pos.X+r, s.Pos.Y+r)
}

// Inside reports whether the offset (di, dj) from the lens center falls on the
// lens disc of radius r. The edge is hard, there is no anti-aliasing.
func Inside(di, dj, r int) bool {
	return di*di+dj*dj <= r*r
}
