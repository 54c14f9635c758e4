// SPDX-License-Identifier: Unlicense OR MIT

package trace

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/gesture"
	"github.com/touchkit/hscroll/io/router"
	"github.com/touchkit/hscroll/widget"
)

// Report is the outcome of a replay.
type Report struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Content int `yaml:"content"`
	// Final is the resting scroll offset after all animations.
	Final    int           `yaml:"final"`
	Steps    []Step        `yaml:"steps"`
	Children []ChildReport `yaml:"children,omitempty"`
}

// Step is the container state after one event or animation frame.
type Step struct {
	T           time.Duration `yaml:"t"`
	Kind        string        `yaml:"kind"`
	Intercepted bool          `yaml:"intercepted,omitempty"`
	Target      string        `yaml:"target,omitempty"`
	Offset      int           `yaml:"offset"`
	State       string        `yaml:"state"`
	Decision    string        `yaml:"decision"`
}

// ChildReport counts the gestures a clickable child received.
type ChildReport struct {
	Index   int    `yaml:"index"`
	Label   string `yaml:"label,omitempty"`
	Clicks  int    `yaml:"clicks"`
	Cancels int    `yaml:"cancels"`
}

// maxSettle bounds the frames run after the last event.
const maxSettle = 10 * time.Second

// Replay attaches h, measures it with the trace geometry and feeds it
// the recorded events through a router, advancing animations at the
// trace frame rate. H is detached before Replay returns.
func Replay(tr *Trace, h *widget.HScroll) Report {
	defer h.Attach()()
	dims := h.Measure(tr.Constraints(), tr.Layout())
	tiles := make([]*widget.Clickable, len(tr.Children))
	for i, c := range tr.Children {
		if c.Clickable {
			tiles[i] = new(widget.Clickable)
		}
	}
	r := router.New(h, func(p f32.Point) router.Handler {
		if i := h.ChildAt(p.Int()); i >= 0 && tiles[i] != nil {
			return tiles[i]
		}
		return nil
	})
	rep := Report{
		Width:   dims.Size.X,
		Height:  dims.Size.Y,
		Content: h.ScrollState().Content,
	}
	step := func(t time.Duration, kind string) Step {
		return Step{
			T:        t,
			Kind:     kind,
			Offset:   h.Offset(),
			State:    h.State().String(),
			Decision: h.Decision().String(),
		}
	}
	interval := tr.frameInterval()
	var clock time.Duration
	frames := func(until time.Duration) {
		for h.State() == gesture.StateSettling && clock+interval <= until {
			clock += interval
			h.Frame(clock)
			rep.Steps = append(rep.Steps, step(clock, "frame"))
		}
	}
	for _, e := range tr.Events {
		frames(e.T)
		clock = max(clock, e.T)
		res := r.Dispatch(e.pointer())
		s := step(e.T, e.Kind.String())
		s.Intercepted = res.Intercepted
		s.Target = res.Target.String()
		rep.Steps = append(rep.Steps, s)
	}
	frames(clock + maxSettle)
	rep.Final = h.Offset()
	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		rep.Children = append(rep.Children, ChildReport{
			Index:   i,
			Label:   tr.Children[i].Label,
			Clicks:  tile.Clicks(),
			Cancels: tile.Cancels(),
		})
	}
	return rep
}

// WriteYAML encodes rep as YAML.
func (rep Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return errors.Wrap(enc.Close(), "encode report")
}

// WriteText writes a line per event step, skipping animation frames
// except the last one. Claimed gestures are highlighted when color
// output is enabled.
func (rep Report) WriteText(w io.Writer) error {
	claimed := color.New(color.FgYellow, color.Bold)
	settled := color.New(color.FgGreen)
	if _, err := fmt.Fprintf(w, "size %dx%d content %d\n", rep.Width, rep.Height, rep.Content); err != nil {
		return errors.Wrap(err, "write report")
	}
	for i, s := range rep.Steps {
		if s.Kind == "frame" && i+1 < len(rep.Steps) {
			continue
		}
		line := fmt.Sprintf("%8v %-7s %-6s offset=%-5d %s %s", s.T, s.Kind, s.Target, s.Offset, s.State, s.Decision)
		if s.Intercepted {
			line = claimed.Sprint(line + " intercepted")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "write report")
		}
	}
	for _, c := range rep.Children {
		if _, err := fmt.Fprintf(w, "child %d %s clicks=%d cancels=%d\n", c.Index, c.Label, c.Clicks, c.Cancels); err != nil {
			return errors.Wrap(err, "write report")
		}
	}
	_, err := fmt.Fprintln(w, settled.Sprintf("final offset %d", rep.Final))
	return errors.Wrap(err, "write report")
}
