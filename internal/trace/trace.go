// SPDX-License-Identifier: Unlicense OR MIT

// Package trace records and replays touch sessions against a scroll
// container. A trace describes the container, its children and a
// timed sequence of pointer events in YAML.
package trace

import (
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/io/pointer"
	"github.com/touchkit/hscroll/layout"
)

// Trace is a recorded touch session.
type Trace struct {
	Padding  layout.Inset      `yaml:"padding"`
	Width    layout.Constraint `yaml:"width"`
	Height   layout.Constraint `yaml:"height"`
	Children []Child           `yaml:"children"`
	// FrameInterval is the display refresh period used to advance
	// animations between events. Zero means 16ms.
	FrameInterval time.Duration `yaml:"frameInterval"`
	Events        []Event       `yaml:"events"`
}

// Child is a child box of the container.
type Child struct {
	Label  string       `yaml:"label,omitempty"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Margin layout.Inset `yaml:"margin"`
	// Clickable children consume presses and become the target
	// of the gestures that start on them.
	Clickable bool `yaml:"clickable"`
}

// Event is a recorded pointer event.
type Event struct {
	Kind    pointer.Kind  `yaml:"kind"`
	T       time.Duration `yaml:"t"`
	X       float32       `yaml:"x"`
	Y       float32       `yaml:"y"`
	Pointer pointer.ID    `yaml:"pointer,omitempty"`
}

const defaultFrameInterval = 16 * time.Millisecond

// Load decodes and validates a trace.
func Load(r io.Reader) (*Trace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	tr := new(Trace)
	if err := dec.Decode(tr); err != nil {
		return nil, errors.Wrap(err, "decode trace")
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Validate checks that the events are in temporal order and the
// geometry is non-negative.
func (tr *Trace) Validate() error {
	if tr.FrameInterval < 0 {
		return errors.Errorf("frameInterval: must not be negative, got %v", tr.FrameInterval)
	}
	for i, c := range tr.Children {
		if c.Width < 0 || c.Height < 0 {
			return errors.Errorf("children[%d]: negative size %dx%d", i, c.Width, c.Height)
		}
	}
	for i := range tr.Events {
		e := tr.Events[i]
		switch e.Kind {
		case pointer.Press, pointer.Move, pointer.Release, pointer.Cancel:
		default:
			return errors.Errorf("events[%d]: missing kind", i)
		}
		if i > 0 && e.T < tr.Events[i-1].T {
			return errors.Errorf("events[%d]: time %v before previous event at %v", i, e.T, tr.Events[i-1].T)
		}
	}
	return nil
}

// Write encodes tr as YAML.
func (tr *Trace) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return errors.Wrap(err, "encode trace")
	}
	return errors.Wrap(enc.Close(), "encode trace")
}

// Record appends a pointer event to the trace.
func (tr *Trace) Record(e pointer.Event) {
	tr.Events = append(tr.Events, Event{
		Kind:    e.Kind,
		T:       e.Time,
		X:       e.Position.X,
		Y:       e.Position.Y,
		Pointer: e.PointerID,
	})
}

// Constraints returns the measurement constraints of the container.
func (tr *Trace) Constraints() layout.Constraints {
	return layout.Constraints{Width: tr.Width, Height: tr.Height}
}

// Layout returns the children as layout input.
func (tr *Trace) Layout() []layout.Child {
	cs := make([]layout.Child, len(tr.Children))
	for i, c := range tr.Children {
		cs[i] = layout.Child{
			Size:   image.Pt(c.Width, c.Height),
			Margin: c.Margin,
		}
	}
	return cs
}

func (e Event) pointer() pointer.Event {
	return pointer.Event{
		Kind:      e.Kind,
		Source:    pointer.Touch,
		PointerID: e.Pointer,
		Time:      e.T,
		Position:  f32.Pt(e.X, e.Y),
	}
}

func (tr *Trace) frameInterval() time.Duration {
	if tr.FrameInterval > 0 {
		return tr.FrameInterval
	}
	return defaultFrameInterval
}
