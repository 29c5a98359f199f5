// Package viewer drives the magnifier window: it tracks the pointer, turns
// paint requests into composited frames and hands them to the screen.
package viewer

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"magnifier/lens"
)

// bufferMaker is the part of screen.Screen the viewer needs.
type bufferMaker interface {
	NewBuffer(size image.Point) (screen.Buffer, error)
}

// eventWindow is the part of screen.Window the viewer needs.
type eventWindow interface {
	NextEvent() interface{}
	Send(event interface{})
	Upload(dp image.Point, src screen.Buffer, sr image.Rectangle)
	Publish() screen.PublishResult
}

type Viewer struct {
	logger  *slog.Logger
	comp    *lens.Compositor
	source  *image.NRGBA
	tracker *Tracker
	frame   *image.NRGBA
	frames  int
}

// New creates a viewer for a compositor built from source and its dimmed copy.
func New(logger *slog.Logger, comp *lens.Compositor, source *image.NRGBA, p lens.Params) *Viewer {
	return &Viewer{
		logger:  logger,
		comp:    comp,
		source:  source,
		tracker: NewTracker(p),
		frame:   image.NewNRGBA(comp.Bounds()),
	}
}

func (v *Viewer) Bounds() image.Rectangle {
	return v.comp.Bounds()
}

// Loop handles window events until the window is closed.
func (v *Viewer) Loop(s bufferMaker, w eventWindow) error {
	for {
		done, err := v.handle(s, w, w.NextEvent())
		if err != nil {
			return err
		}
		if done {
			v.logger.Info("window closed", "frames", v.frames)
			return nil
		}
	}
}

func (v *Viewer) handle(s bufferMaker, w eventWindow, e interface{}) (bool, error) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return true, nil
		}

	case mouse.Event:
		if e.Direction != mouse.DirNone {
			return false, nil
		}
		x, y := int(math.Floor(float64(e.X))), int(math.Floor(float64(e.Y)))
		if v.tracker.PointerMoved(x, y) {
			w.Send(paint.Event{})
		}
		v.probe(x, y)

	case paint.Event:
		return false, v.paint(s, w)

	case size.Event:
		v.logger.Debug("window size", "width", e.WidthPx, "height", e.HeightPx)

	case error:
		v.logger.Error("window event", "error", e)
	}
	return false, nil
}

func (v *Viewer) paint(s bufferMaker, w eventWindow) error {
	st := v.tracker.Snapshot()
	v.comp.Compose(v.frame, st)

	b, err := s.NewBuffer(v.frame.Rect.Size())
	if err != nil {
		return fmt.Errorf("could not allocate frame buffer: %w", err)
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.Bounds(), v.frame, v.frame.Rect.Min, draw.Src)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	v.frames++
	return nil
}

func (v *Viewer) probe(x, y int) {
	if !v.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if sample, ok := lens.Probe(v.source, image.Pt(x, y)); ok {
		v.logger.Debug("pointer", "x", x, "y", y, "color", sample.Hex,
			"hsl", fmt.Sprintf("%d,%d%%,%d%%", sample.H, sample.S, sample.L), "alpha", sample.Alpha)
	}
}
