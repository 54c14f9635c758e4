// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router routes pointer events from the host to a scroll
container and its children, the way a view hierarchy dispatches
touches.

Every event of a gesture whose target is a child is first offered to
the container's Intercept method. Once the container intercepts, the
child receives a Cancel and the rest of the gesture goes to the
container's Touch method. Gestures that no child accepts are delivered
to the container directly, without interception.
*/
package router

import (
	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/io/event"
	"github.com/touchkit/hscroll/io/pointer"
)

// Handler receives the pointer events of gestures it is the target
// of. Touch reports whether the event was consumed; a child that
// does not consume a press does not become the target.
type Handler interface {
	Touch(e pointer.Event) bool
}

// Interceptor is a container that may claim gestures from its
// children.
type Interceptor interface {
	Handler
	Intercept(e pointer.Event) bool
}

// HitFunc returns the child handler at a position in container
// coordinates, or nil.
type HitFunc func(p f32.Point) Handler

// Router dispatches the pointer events of one gesture at a time.
type Router struct {
	parent Interceptor
	hit    HitFunc
	// child is the target of the current gesture, if any.
	child Handler
}

// Target identifies the receiver of a dispatched event.
type Target uint8

// Result describes the dispatch of a single event.
type Result struct {
	// Intercepted reports whether the container's Intercept
	// method claimed the gesture.
	Intercepted bool
	Target      Target
	Handled     bool
}

const (
	TargetNone Target = iota
	TargetChild
	TargetParent
)

// New returns a router for the container parent. Hit may be nil for
// containers without interactive children.
func New(parent Interceptor, hit HitFunc) *Router {
	return &Router{parent: parent, hit: hit}
}

// Queue dispatches events in order and reports whether any was
// handled. Events other than pointer events are ignored.
func (r *Router) Queue(events ...event.Event) bool {
	handled := false
	for _, e := range events {
		if pe, ok := e.(pointer.Event); ok {
			if r.Dispatch(pe).Handled {
				handled = true
			}
		}
	}
	return handled
}

// Dispatch routes a single event.
func (r *Router) Dispatch(e pointer.Event) Result {
	if e.Kind == pointer.Press {
		r.child = nil
	}
	var res Result
	if e.Kind == pointer.Press || r.child != nil {
		res.Intercepted = r.parent.Intercept(e)
	}
	if e.Kind == pointer.Press && !res.Intercepted && r.hit != nil {
		if h := r.hit(e.Position); h != nil && h.Touch(e) {
			r.child = h
			res.Target, res.Handled = TargetChild, true
			return res
		}
	}
	if r.child != nil {
		if res.Intercepted {
			cancel := e
			cancel.Kind = pointer.Cancel
			r.child.Touch(cancel)
			r.child = nil
			res.Target, res.Handled = TargetParent, true
			return res
		}
		res.Target = TargetChild
		res.Handled = r.child.Touch(e)
		if e.Kind == pointer.Release || e.Kind == pointer.Cancel {
			r.child = nil
		}
		return res
	}
	res.Target = TargetParent
	res.Handled = r.parent.Touch(e)
	return res
}

// Active reports whether a child is the target of the current
// gesture.
func (r *Router) Active() bool {
	return r.child != nil
}

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetChild:
		return "child"
	case TargetParent:
		return "parent"
	default:
		panic("invalid Target")
	}
}
