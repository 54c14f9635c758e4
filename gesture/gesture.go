// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events from the host and detect
higher level actions such as clicks and horizontal scrolling.

A Scroll is driven through two entry points, matching the two phases
of pointer dispatch in a view hierarchy. Intercept is offered every
event on its way down to a child and reports whether the scroller
claims the gesture. Touch receives the events the scroller handles
itself. Frame advances the settle animation that follows a release.
*/
package gesture

import (
	"time"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/internal/fling"
	"github.com/touchkit/hscroll/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	pid   pointer.ID
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click. TypeCancel is
// reported when a pressed click was taken away.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
	Source   pointer.Source
}

type ClickType uint8

// Scroll detects horizontal drag and fling gestures and reduces
// them to changes of a ScrollState.
type Scroll struct {
	// Threshold is the minimum release speed in pixels per second
	// that extends the settle animation. Zero means
	// DefaultFlingThreshold.
	Threshold float32
	// Duration of the settle animation. Zero means
	// DefaultSettleDuration.
	Duration time.Duration

	arbiter   Arbiter
	estimator *fling.Extrapolation
	settle    fling.Animation
	dragging  bool
}

// State is the scroll state reported by Scroll.State.
type State uint8

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reporoted when a click action
	// is complete.
	TypeClick
	// TypeCancel is reported when a pressed click
	// is cancelled.
	TypeCancel
)

const (
	// StateIdle is the default scroll state.
	StateIdle State = iota
	// StateDragging is reported during drag gestures.
	StateDragging
	// StateSettling is reported while the settle
	// animation runs.
	StateSettling
)

const (
	DefaultFlingThreshold float32 = 50
	DefaultSettleDuration         = 500 * time.Millisecond
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update processes a pointer event and returns the resulting click
// event, if any.
func (c *Click) Update(e pointer.Event) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		if c.state != StatePressed || e.PointerID != c.pid {
			break
		}
		c.state = StateNormal
		return ClickEvent{Type: TypeClick, Position: e.Position, Source: e.Source}, true
	case pointer.Cancel:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed {
			return ClickEvent{Type: TypeCancel, Position: e.Position, Source: e.Source}, true
		}
	case pointer.Press:
		if c.state == StatePressed {
			break
		}
		c.state = StatePressed
		c.pid = e.PointerID
		return ClickEvent{Type: TypePress, Position: e.Position, Source: e.Source}, true
	}
	return ClickEvent{}, false
}

// Attach allocates the velocity tracker. Scroll ignores touches
// while detached.
func (s *Scroll) Attach() {
	if s.estimator == nil {
		s.estimator = new(fling.Extrapolation)
	}
}

// Detach releases the velocity tracker and abandons any gesture or
// animation in progress.
func (s *Scroll) Detach() {
	s.estimator = nil
	s.arbiter.Reset()
	s.settle.Stop()
	s.dragging = false
}

// Attached reports whether the velocity tracker is allocated.
func (s *Scroll) Attached() bool {
	return s.estimator != nil
}

// SetDeadzone sets the minimum horizontal move in pixels before
// Intercept claims a gesture.
func (s *Scroll) SetDeadzone(px int) {
	s.arbiter.Deadzone = px
}

// Stop any remaining settle movement.
func (s *Scroll) Stop() {
	s.settle.Stop()
}

// Intercept reports whether the scroller claims the gesture e belongs
// to. A press during a settle animation stops the animation and is
// always claimed.
func (s *Scroll) Intercept(e pointer.Event) bool {
	settling := e.Kind == pointer.Press && s.settle.Active()
	if settling {
		s.settle.Stop()
	}
	return s.arbiter.Intercept(e, settling)
}

// Touch applies an event delivered directly to the scroller and
// returns the updated state.
func (s *Scroll) Touch(e pointer.Event, st ScrollState) ScrollState {
	if s.estimator == nil {
		return st
	}
	switch e.Kind {
	case pointer.Press:
		s.settle.Stop()
		s.arbiter.Own(e)
		s.estimator.Clear()
		s.estimator.Sample(e.Time, e.Position.X)
		s.dragging = true
	case pointer.Move:
		if !s.arbiter.Accepts(e) {
			break
		}
		// Set here too for gestures claimed during interception.
		s.dragging = true
		d := s.arbiter.Track(e)
		s.estimator.Sample(e.Time, e.Position.X)
		st.Offset -= Clamp(d.X, st)
	case pointer.Release:
		if !s.arbiter.Accepts(e) {
			break
		}
		s.arbiter.Track(e)
		s.estimator.Sample(e.Time, e.Position.X)
		// Pointer velocity is opposite to the offset velocity.
		vx := -s.estimator.Estimate().Velocity
		s.settle = Settle(st, vx, s.threshold(), e.Time, s.duration())
		s.estimator.Clear()
		s.arbiter.Reset()
		s.dragging = false
	case pointer.Cancel:
		s.estimator.Clear()
		s.arbiter.Reset()
		s.dragging = false
	}
	return st
}

// Resize updates the extents of st. The offset and a running settle
// animation are both kept within the new legal range.
func (s *Scroll) Resize(st ScrollState, content, viewport int) ScrollState {
	st = st.Resize(content, viewport)
	if s.settle.Active() {
		s.settle.Retarget(0, st.Max())
	}
	return st
}

// Frame advances the settle animation to now and returns the updated
// state and whether further frames are needed.
func (s *Scroll) Frame(now time.Duration, st ScrollState) (ScrollState, bool) {
	if !s.settle.Active() {
		return st, false
	}
	off, active := s.settle.Tick(now)
	st.Offset = off
	return st, active
}

// Animation returns the current or most recent settle animation.
func (s *Scroll) Animation() fling.Animation {
	return s.settle
}

// Arbiter returns the gesture arbiter state.
func (s *Scroll) Arbiter() *Arbiter {
	return &s.arbiter
}

// State reports the scroll state.
func (s *Scroll) State() State {
	switch {
	case s.settle.Active():
		return StateSettling
	case s.dragging:
		return StateDragging
	default:
		return StateIdle
	}
}

func (s *Scroll) threshold() float32 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return DefaultFlingThreshold
}

func (s *Scroll) duration() time.Duration {
	if s.Duration > 0 {
		return s.Duration
	}
	return DefaultSettleDuration
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	case TypeCancel:
		return "TypeCancel"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateSettling:
		return "StateSettling"
	default:
		panic("unreachable")
	}
}
