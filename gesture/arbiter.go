// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"image"
	"time"

	"github.com/touchkit/hscroll/io/pointer"
)

// Arbiter decides, per pointer event, whether a horizontal scroller
// should take a gesture away from an enclosing view. The decision is
// made on the dominant axis of each move sample and latched once the
// gesture is claimed.
type Arbiter struct {
	// Deadzone is the horizontal distance in pixels a single move
	// sample must exceed before the gesture can be claimed. The zero
	// value claims on any horizontally dominant move.
	Deadzone int

	state   ArbiterState
	session GestureSession
}

// ArbiterState is the state of the gesture seen by an Arbiter.
type ArbiterState uint8

// Decision is the interception verdict for the current gesture.
type Decision uint8

// GestureSession is the per-gesture state shared by interception and
// direct dispatch. It is reset as a whole on press and cleared on
// release.
type GestureSession struct {
	// Last is the most recent pointer position in whole pixels.
	Last image.Point
	// Time of the most recent sample.
	Time time.Duration
	// Pointer tracks the pointer that started the gesture.
	Pointer pointer.ID
}

const (
	// ArbiterIdle is the state between gestures.
	ArbiterIdle ArbiterState = iota
	// ArbiterUndecided is reported after a press, until a move
	// sample is predominantly horizontal.
	ArbiterUndecided
	// ArbiterOwns is reported once the gesture has been claimed.
	ArbiterOwns
	// ArbiterDeclined is reported when the gesture was cancelled
	// by the host, usually because an ancestor claimed it.
	ArbiterDeclined
)

const (
	Undecided Decision = iota
	Intercepting
	NotIntercepting
)

// Intercept processes an event offered during the bubble-down
// phase and reports whether the gesture is claimed. Settling reports
// whether a settle animation is still running; a press during a
// settle is claimed immediately.
func (a *Arbiter) Intercept(e pointer.Event, settling bool) bool {
	switch e.Kind {
	case pointer.Press:
		a.begin(e)
		if settling {
			a.state = ArbiterOwns
		}
	case pointer.Move:
		switch {
		case a.state == ArbiterIdle:
			// A move without a press; start over from here.
			a.begin(e)
		case a.state == ArbiterDeclined || e.PointerID != a.session.Pointer:
		case a.state == ArbiterUndecided:
			d := a.Track(e)
			if dx := abs(d.X); dx > abs(d.Y) && dx > a.Deadzone {
				a.state = ArbiterOwns
			}
		default:
			a.Track(e)
		}
	case pointer.Release:
		if e.PointerID == a.session.Pointer {
			a.Reset()
		}
	case pointer.Cancel:
		a.session = GestureSession{}
		a.state = ArbiterDeclined
	}
	return a.state == ArbiterOwns
}

// Own starts a gesture delivered directly to the scroller, without an
// interception phase.
func (a *Arbiter) Own(e pointer.Event) {
	a.begin(e)
	a.state = ArbiterOwns
}

// Track records e as the latest sample of the gesture and returns
// the displacement from the previous sample.
func (a *Arbiter) Track(e pointer.Event) image.Point {
	p := e.Position.Int()
	d := p.Sub(a.session.Last)
	a.session.Last = p
	a.session.Time = e.Time
	return d
}

// Reset ends the gesture. The next gesture starts undecided.
func (a *Arbiter) Reset() {
	a.session = GestureSession{}
	a.state = ArbiterIdle
}

// State reports the arbiter state.
func (a *Arbiter) State() ArbiterState {
	return a.state
}

// Decision reports the interception verdict for the current gesture.
func (a *Arbiter) Decision() Decision {
	switch a.state {
	case ArbiterOwns:
		return Intercepting
	case ArbiterDeclined:
		return NotIntercepting
	default:
		return Undecided
	}
}

// Session returns the current gesture session.
func (a *Arbiter) Session() GestureSession {
	return a.session
}

// Accepts reports whether e belongs to the current gesture.
func (a *Arbiter) Accepts(e pointer.Event) bool {
	return a.state != ArbiterIdle && a.state != ArbiterDeclined && e.PointerID == a.session.Pointer
}

func (a *Arbiter) begin(e pointer.Event) {
	a.session = GestureSession{
		Last:    e.Position.Int(),
		Time:    e.Time,
		Pointer: e.PointerID,
	}
	a.state = ArbiterUndecided
}

func (s ArbiterState) String() string {
	switch s {
	case ArbiterIdle:
		return "Idle"
	case ArbiterUndecided:
		return "Undecided"
	case ArbiterOwns:
		return "OwnsGesture"
	case ArbiterDeclined:
		return "DeclinedGesture"
	default:
		panic("invalid ArbiterState")
	}
}

func (d Decision) String() string {
	switch d {
	case Undecided:
		return "Undecided"
	case Intercepting:
		return "Intercepting"
	case NotIntercepting:
		return "NotIntercepting"
	default:
		panic("invalid Decision")
	}
}
