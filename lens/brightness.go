package lens

import (
	"fmt"
	"image"
	"math"

	"magnifier/parallel"
)

// brightnessTable maps every channel value c to clamp(round(c*b), 0, 255).
// Halves round away from zero, so 255*0.5 becomes 128.
func brightnessTable(b float64) *[256]uint8 {
	var lut [256]uint8
	for c := range lut {
		v := math.Round(float64(c) * b)
		switch {
		case v > 255:
			v = 255
		case v < 0:
			v = 0
		}
		lut[c] = uint8(v)
	}
	return &lut
}

// Dim returns a copy of src with every color channel scaled by b. Alpha is
// kept as is. Rows are processed on a pool of workers goroutines, 0 meaning
// one per CPU.
func Dim(src *image.NRGBA, b float64, workers int) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	if !(b >= 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBrightness, b)
	}

	lut := brightnessTable(b)
	rect := src.Rect
	dst := image.NewNRGBA(rect)
	width := rect.Dx() * 4

	parallel.Start(workers).Rows(rect.Min.Y, rect.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			si := src.PixOffset(rect.Min.X, y)
			di := dst.PixOffset(rect.Min.X, y)
			s := src.Pix[si : si+width : si+width]
			d := dst.Pix[di : di+width : di+width]
			for x := 0; x < width; x += 4 {
				d[x+0] = lut[s[x+0]]
				d[x+1] = lut[s[x+1]]
				d[x+2] = lut[s[x+2]]
				d[x+3] = s[x+3]
			}
		}
	})

	return dst, nil
}
