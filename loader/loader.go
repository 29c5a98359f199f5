// Package loader reads an image file into the NRGBA form the lens works on.
package loader

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path and returns it as an *image.NRGBA with its
// bounds anchored at (0,0), along with the detected format name.
func Load(path string) (*image.NRGBA, string, error) {
	if err := checkFile(path); err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, "", fmt.Errorf("image %q has no pixels", path)
	}
	slog.Debug("decoded image", "file", path, "format", format,
		"width", bounds.Dx(), "height", bounds.Dy())

	return imaging.Clone(img), format, nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat image file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot read non-regular file %q: %s", info.Name(), info.Mode().String())
	}
	return nil
}
