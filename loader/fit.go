package loader

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales img down so that it is at most maxWidth x maxHeight, keeping the
// aspect ratio. A zero limit means no limit on that axis. Images that already
// fit are returned unchanged; Fit never enlarges.
func Fit(logger *slog.Logger, img *image.NRGBA, maxWidth, maxHeight int) *image.NRGBA {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	ratio := 1.0
	if maxWidth > 0 && srcWidth > float64(maxWidth) {
		ratio = float64(maxWidth) / srcWidth
	}
	if maxHeight > 0 && srcHeight > float64(maxHeight) {
		ratio = math.Min(ratio, float64(maxHeight)/srcHeight)
	}
	if ratio == 1.0 {
		return img
	}

	destWidth := max(1, int(math.Round(srcWidth*ratio)))
	destHeight := max(1, int(math.Round(srcHeight*ratio)))
	if maxWidth > 0 {
		destWidth = min(destWidth, maxWidth)
	}
	if maxHeight > 0 {
		destHeight = min(destHeight, maxHeight)
	}

	logger.Info("resizing", "from_width", srcBounds.Dx(), "from_height", srcBounds.Dy(),
		"width", destWidth, "height", destHeight)
	dest := image.NewNRGBA(image.Rect(0, 0, destWidth, destHeight))
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)

	return dest
}
