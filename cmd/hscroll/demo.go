// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/gesture"
	"github.com/touchkit/hscroll/internal/logging"
	"github.com/touchkit/hscroll/internal/trace"
	"github.com/touchkit/hscroll/io/pointer"
	"github.com/touchkit/hscroll/io/router"
	"github.com/touchkit/hscroll/layout"
	"github.com/touchkit/hscroll/widget"
)

var defaultLabels = []string{
	"alpha", "beta", "gamma", "delta", "東京", "epsilon", "zeta",
	"eta", "theta", "omega", "iota", "kappa", "lambda", "mu",
}

const (
	// Rows above the container.
	demoTop     = 2
	tileHeight  = 5
	framePeriod = 16 * time.Millisecond
)

func newDemoCommand(a *app) *cobra.Command {
	var (
		labels  []string
		record  string
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Scroll a row of tiles in the terminal with mouse drags",
		Long: `Scroll a row of tiles in the terminal. Press and drag with the left
mouse button; a horizontal drag scrolls the row, a click on a tile counts
as a tap. Press q or Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logr.Discard()
			if logFile != "" {
				f, err := os.Create(logFile)
				if err != nil {
					return errors.Wrap(err, "create log file")
				}
				defer f.Close()
				if log, err = logging.New(a.cfg.LogLevel, f); err != nil {
					return err
				}
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(err, "open terminal")
			}
			if err := screen.Init(); err != nil {
				return errors.Wrap(err, "init terminal")
			}
			screen.EnableMouse(tcell.MouseDragEvents)
			d := newDemo(screen, a.scroller(log), labels)
			d.log = log
			if record != "" {
				d.rec = new(trace.Trace)
			}
			if err := d.run(cmd.Context()); err != nil {
				return err
			}
			if d.rec == nil {
				return nil
			}
			return writeTrace(record, d.rec)
		},
	}
	cmd.Flags().StringSliceVar(&labels, "labels", defaultLabels, "Tile labels")
	cmd.Flags().StringVar(&record, "record", "", "Write the touch session to a trace file on exit")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to a file instead of discarding them")
	return cmd
}

func writeTrace(path string, tr *trace.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trace")
	}
	if err := tr.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "write trace")
}

// demo draws a scroll container onto a terminal screen, one pixel per
// cell.
type demo struct {
	screen tcell.Screen
	h      *widget.HScroll
	router *router.Router
	labels []string
	tiles  []*widget.Clickable
	// now returns the time since the demo started.
	now func() time.Duration
	log logr.Logger
	rec *trace.Trace

	pressed bool
	last    image.Point
	clicks  int
	tapped  string
}

func newDemo(screen tcell.Screen, h *widget.HScroll, labels []string) *demo {
	start := time.Now()
	d := &demo{
		screen: screen,
		h:      h,
		labels: labels,
		tiles:  make([]*widget.Clickable, len(labels)),
		now:    func() time.Duration { return time.Since(start) },
		log:    logr.Discard(),
	}
	for i := range d.tiles {
		d.tiles[i] = new(widget.Clickable)
	}
	h.Padding = layout.Inset{Left: 1, Right: 1}
	d.router = router.New(h, func(p f32.Point) router.Handler {
		if i := h.ChildAt(p.Int()); i >= 0 {
			return d.tiles[i]
		}
		return nil
	})
	return d
}

// children returns the tile boxes, each wide enough for its label.
func (d *demo) children() []layout.Child {
	cs := make([]layout.Child, len(d.labels))
	for i, l := range d.labels {
		cs[i] = layout.Child{
			Size:   image.Pt(runewidth.StringWidth(l)+4, tileHeight),
			Margin: layout.Inset{Right: 1},
		}
	}
	return cs
}

func (d *demo) measure() {
	w, h := d.screen.Size()
	cs := layout.Constraints{
		Width:  layout.Constraint{Max: w, Mode: layout.Fill},
		Height: layout.Constraint{Max: max(h-demoTop-1, 0), Mode: layout.Wrap},
	}
	d.h.Measure(cs, d.children())
	if d.rec != nil {
		d.rec.Padding = d.h.Padding
		d.rec.Width, d.rec.Height = cs.Width, cs.Height
		d.rec.FrameInterval = framePeriod
		d.rec.Children = d.rec.Children[:0]
		for i, c := range d.children() {
			d.rec.Children = append(d.rec.Children, trace.Child{
				Label:     d.labels[i],
				Width:     c.Size.X,
				Height:    c.Size.Y,
				Margin:    c.Margin,
				Clickable: true,
			})
		}
	}
}

// run polls terminal events on a separate goroutine and animates the
// container on a frame ticker until the user quits or ctx is done.
// The screen is finalized before run returns.
func (d *demo) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer d.h.Attach()()
	d.measure()
	d.draw()
	events := make(chan tcell.Event, 100)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer d.screen.Fini()
		defer cancel()
		return d.loop(ctx, events)
	})
	return g.Wait()
}

func (d *demo) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev := <-events:
			if !d.handle(ev) {
				return nil
			}
			d.draw()
		case <-ticker.C:
			if d.h.State() == gesture.StateSettling {
				d.h.Frame(d.now())
				d.draw()
			}
		}
	}
}

// handle processes a terminal event and reports whether the demo
// should keep running.
func (d *demo) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	case *tcell.EventResize:
		d.measure()
		d.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := image.Pt(x, y-demoTop)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !d.pressed:
			d.pressed = true
			d.dispatch(pointer.Press, p)
		case down && p != d.last:
			d.dispatch(pointer.Move, p)
		case !down && d.pressed:
			d.pressed = false
			d.dispatch(pointer.Release, p)
		}
	}
	return true
}

func (d *demo) dispatch(k pointer.Kind, p image.Point) {
	d.last = p
	e := pointer.Event{
		Kind:     k,
		Source:   pointer.Mouse,
		Time:     d.now(),
		Position: f32.Pt(float32(p.X), float32(p.Y)),
	}
	if d.rec != nil {
		d.rec.Record(e)
	}
	res := d.router.Dispatch(e)
	if res.Intercepted {
		d.log.V(1).Info("drag taken from tile", "x", p.X)
	}
	for i, t := range d.tiles {
		if n := t.Clicks(); n > 0 {
			d.clicks += n
			d.tapped = d.labels[i]
		}
	}
}

var (
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTile    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	stylePressed = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (d *demo) draw() {
	s := d.screen
	s.Clear()
	w, h := s.Size()
	drawText(s, 0, 0, "hscroll demo: drag tiles sideways, q to quit", styleTitle)
	for i, r := range d.h.Visible() {
		r = r.Add(image.Pt(0, demoTop))
		st := styleTile
		if d.tiles[i].Pressed() {
			st = stylePressed
		}
		vis := r.Intersect(image.Rect(0, 0, w, h-1))
		for y := vis.Min.Y; y < vis.Max.Y; y++ {
			for x := vis.Min.X; x < vis.Max.X; x++ {
				s.SetContent(x, y, ' ', nil, st)
			}
		}
		lw := runewidth.StringWidth(d.labels[i])
		drawText(s, r.Min.X+(r.Dx()-lw)/2, r.Min.Y+r.Dy()/2, d.labels[i], st)
		// Mark recent presses where they landed.
		for _, p := range d.tiles[i].History(d.now()) {
			m := p.Position.Int().Add(image.Pt(0, demoTop))
			if m.In(vis) {
				s.SetContent(m.X, m.Y, '*', nil, st)
			}
		}
	}
	ss := d.h.ScrollState()
	status := fmt.Sprintf("offset %d/%d  %v  %v  taps %d", ss.Offset, ss.Max(), d.h.State(), d.h.Decision(), d.clicks)
	if d.tapped != "" {
		status += "  last " + d.tapped
	}
	drawText(s, 0, h-1, status, styleStatus)
	s.Show()
}

// drawText draws str from column x, clipped to the screen.
func drawText(s tcell.Screen, x, y int, str string, st tcell.Style) {
	w, _ := s.Size()
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if x >= 0 && x+rw <= w {
			s.SetContent(x, y, r, nil, st)
		}
		x += rw
	}
}
