package lens

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Sample describes a single pixel for diagnostics.
type Sample struct {
	Hex   string
	H     int // degrees, 0-360
	S     int // percent
	L     int // percent
	Alpha uint8
}

// Probe samples img at p. It returns false when p is off the image or the
// pixel is fully transparent.
func Probe(img *image.NRGBA, p image.Point) (Sample, bool) {
	if img == nil || !p.In(img.Rect) {
		return Sample{}, false
	}
	px := img.NRGBAAt(p.X, p.Y)
	col, ok := colorful.MakeColor(px)
	if !ok {
		return Sample{}, false
	}

	h, s, l := col.Hsl()
	return Sample{
		Hex:   col.Hex(),
		H:     int(math.Round(h)),
		S:     int(math.Round(s * 100)),
		L:     int(math.Round(l * 100)),
		Alpha: px.A,
	}, true
}
