package viewer

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/alecthomas/kong"

	"magnifier/lens"
	"magnifier/loader"
)

type CLICmd struct {
	Image      string  `help:"Image to display" required:""`
	Scale      float64 `help:"Lens zoom factor, above 1 magnifies" default:"1.0"`
	Radius     int     `help:"Lens radius in pixels" default:"75"`
	Brightness float64 `help:"Brightness factor of the area outside the lens" default:"0.75"`
	MaxWidth   int     `help:"Shrink images wider than this (0 for no limit)" default:"0" group:"fit"`
	MaxHeight  int     `help:"Shrink images taller than this (0 for no limit)" default:"0" group:"fit"`
	Workers    int     `help:"Goroutines used to prepare the background (0 for one per CPU)" default:"0"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	imagePath, err := filepath.Abs(c.Image)
	if err != nil {
		return fmt.Errorf("invalid image path %q: %w", c.Image, err)
	}
	c.Image = imagePath

	if err := c.Params().Validate(); err != nil {
		return err
	}

	switch {
	case !(c.Brightness >= 0) || math.IsInf(c.Brightness, 0):
		return fmt.Errorf("invalid brightness %v: must be a finite number, 0 or above", c.Brightness)
	case c.MaxWidth < 0:
		return fmt.Errorf("invalid max width: %d", c.MaxWidth)
	case c.MaxHeight < 0:
		return fmt.Errorf("invalid max height: %d", c.MaxHeight)
	case c.Workers < 0:
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}

	return nil
}

func (c *CLICmd) Params() lens.Params {
	return lens.Params{Radius: c.Radius, Scale: c.Scale}
}

// Prepare loads the image and builds the viewer for it.
func (c *CLICmd) Prepare(logger *slog.Logger) (*Viewer, error) {
	logger = logger.With("file", c.Image)

	img, format, err := loader.Load(c.Image)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded image", "format", format, "width", img.Rect.Dx(), "height", img.Rect.Dy())

	img = loader.Fit(logger, img, c.MaxWidth, c.MaxHeight)

	background, err := lens.Dim(img, c.Brightness, c.Workers)
	if err != nil {
		return nil, fmt.Errorf("could not prepare background: %w", err)
	}

	comp, err := lens.NewCompositor(background, img)
	if err != nil {
		return nil, err
	}
	return New(logger, comp, img, c.Params()), nil
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	v, err := c.Prepare(logger)
	if err != nil {
		return err
	}

	logger.Info("showing image", "radius", c.Radius, "scale", c.Scale, "brightness", c.Brightness)
	return Run(v, "magnifier - "+filepath.Base(c.Image))
}
