package lens

import (
	"fmt"
	"image"
	"math"
)

// Compositor combines a background and a source image of equal size into
// frames. It only reads the two images, so it may be shared across frames.
type Compositor struct {
	bg  *image.NRGBA
	src *image.NRGBA
}

func NewCompositor(bg, src *image.NRGBA) (*Compositor, error) {
	if bg == nil || src == nil {
		return nil, ErrNoImage
	}
	if bg.Rect != src.Rect {
		return nil, fmt.Errorf("%w: %v vs %v", ErrSizeMismatch, bg.Rect, src.Rect)
	}
	return &Compositor{bg: bg, src: src}, nil
}

func (c *Compositor) Bounds() image.Rectangle {
	return c.bg.Rect
}

// Frame allocates a new frame and composes st into it.
func (c *Compositor) Frame(st State) *image.NRGBA {
	dst := image.NewNRGBA(c.bg.Rect)
	c.Compose(dst, st)
	return dst
}

// Compose writes the background into dst and, when the pointer position is
// known, draws the lens tile centered on it. Only the part of dst that
// overlaps the compositor's bounds is written.
func (c *Compositor) Compose(dst *image.NRGBA, st State) {
	area := dst.Rect.Intersect(c.bg.Rect)
	copyRows(dst, c.bg, area, c.bg.Rect.Min)

	tile := c.Tile(st)
	if tile == nil {
		return
	}
	box := st.Bounds()
	copyRows(dst, tile, box.Intersect(area), box.Min)
}

// Tile renders the 2r x 2r lens tile for st, with bounds anchored at (0,0).
// Offsets on the disc sample the source at center + offset/scale, the rest of
// the square samples the background at the same display position. Samples
// falling off the image are left as the zero pixel. Tile returns nil when the
// pointer position is not known.
func (c *Compositor) Tile(st State) *image.NRGBA {
	if !st.Known {
		return nil
	}

	r := st.Radius
	tile := image.NewNRGBA(image.Rect(0, 0, 2*r, 2*r))
	left, top := st.Pos.X-r, st.Pos.Y-r
	cx, cy := float64(st.Pos.X), float64(st.Pos.Y)

	for j := 0; j < 2*r; j++ {
		dj := j - r
		sy := int(math.Floor(cy + float64(dj)/st.Scale))
		row := tile.Pix[j*tile.Stride : (j+1)*tile.Stride]
		for i := 0; i < 2*r; i++ {
			di := i - r
			var px []uint8
			if Inside(di, dj, r) {
				sx := int(math.Floor(cx + float64(di)/st.Scale))
				px = pixel(c.src, sx, sy)
			} else {
				px = pixel(c.bg, left+i, top+j)
			}
			if px != nil {
				copy(row[i*4:i*4+4], px)
			}
		}
	}
	return tile
}

// pixel returns the four bytes of img at (x, y), or nil off the image.
func pixel(img *image.NRGBA, x, y int) []uint8 {
	if !(image.Point{x, y}.In(img.Rect)) {
		return nil
	}
	o := img.PixOffset(x, y)
	return img.Pix[o : o+4 : o+4]
}

// copyRows copies the area of dst from src, with src.Rect.Min placed at origin
// in dst coordinates. area must lie within both images after that shift.
func copyRows(dst, src *image.NRGBA, area image.Rectangle, origin image.Point) {
	if area.Empty() {
		return
	}
	n := area.Dx() * 4
	sp := area.Min.Sub(origin).Add(src.Rect.Min)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		di := dst.PixOffset(area.Min.X, y)
		si := src.PixOffset(sp.X, sp.Y+y-area.Min.Y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}
