package viewer

import (
	"fmt"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
)

// Run opens a window sized to the image and runs v's event loop on it. It
// returns once the window has been closed.
func Run(v *Viewer, title string) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		size := v.Bounds().Size()
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  size.X,
			Height: size.Y,
			Title:  title,
		})
		if err != nil {
			runErr = fmt.Errorf("could not create window: %w", err)
			return
		}
		defer w.Release()

		runErr = v.Loop(s, w)
	})
	return runErr
}
