// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"github.com/go-logr/logr"

	"github.com/touchkit/hscroll/gesture"
	"github.com/touchkit/hscroll/io/pointer"
	"github.com/touchkit/hscroll/layout"
	"github.com/touchkit/hscroll/unit"
)

// HScroll is a container that lays out its children in a row and
// scrolls them horizontally under touch. It takes horizontally
// dominant drags away from its children and any enclosing vertical
// scroller, and settles with an ease-out animation after release.
//
// HScroll is not safe for concurrent use; the host calls it from its
// event loop only.
type HScroll struct {
	layout.Row
	// FlingThreshold is the minimum release speed in px/s that
	// extends the settle animation. Zero means 50.
	FlingThreshold float32
	// SettleDuration is the length of the settle animation. Zero
	// means 500ms.
	SettleDuration time.Duration
	// Deadzone is the horizontal distance a move sample must exceed
	// before a gesture is claimed.
	Deadzone unit.Dp
	// Metric converts Deadzone to pixels.
	Metric unit.Metric
	// Logger receives gesture decisions at V(1).
	Logger logr.Logger

	scroll  gesture.Scroll
	state   gesture.ScrollState
	arr     layout.Arrangement
	claimed bool
}

// Attach acquires the resources the container needs while it is part
// of a live view tree and returns a function that releases them.
// Hosts should defer the returned function so that the release
// happens on every exit path.
func (h *HScroll) Attach() (detach func()) {
	h.configure()
	h.scroll.Attach()
	h.Logger.V(1).Info("attached")
	return h.Detach
}

// Detach releases the velocity tracker and stops any animation. It is
// safe to call more than once.
func (h *HScroll) Detach() {
	if !h.scroll.Attached() {
		return
	}
	h.scroll.Detach()
	h.claimed = false
	h.Logger.V(1).Info("detached", "offset", h.state.Offset)
}

// Measure lays out children against cs and returns the container
// size. The scroll offset and any settle in progress are pinned to
// the new legal range.
func (h *HScroll) Measure(cs layout.Constraints, children []layout.Child) layout.Dimensions {
	h.arr = h.Row.Layout(cs, children)
	h.state = h.scroll.Resize(h.state, h.arr.Content, h.arr.Size.X)
	return h.arr.Dimensions
}

// Placements returns the child boxes from the last Measure in
// content coordinates.
func (h *HScroll) Placements() []image.Rectangle {
	return h.arr.Placements
}

// Visible returns the child boxes translated by the scroll offset
// into container coordinates. The result may include boxes outside
// the viewport.
func (h *HScroll) Visible() []image.Rectangle {
	d := image.Pt(h.state.Offset, 0)
	rs := make([]image.Rectangle, len(h.arr.Placements))
	for i, r := range h.arr.Placements {
		rs[i] = r.Sub(d)
	}
	return rs
}

// ChildAt returns the index of the child under p in container
// coordinates, or -1.
func (h *HScroll) ChildAt(p image.Point) int {
	d := image.Pt(h.state.Offset, 0)
	for i, r := range h.arr.Placements {
		if p.Add(d).In(r) {
			return i
		}
	}
	return -1
}

// Intercept is offered every event on its way to a child and reports
// whether the container claims the gesture.
func (h *HScroll) Intercept(e pointer.Event) bool {
	if !h.scroll.Attached() {
		return false
	}
	h.configure()
	claim := h.scroll.Intercept(e)
	switch {
	case e.Kind == pointer.Press:
		h.claimed = claim
		if claim {
			h.Logger.V(1).Info("press interrupted settle", "offset", h.state.Offset)
		}
	case claim && !h.claimed:
		h.claimed = true
		h.Logger.V(1).Info("gesture claimed", "x", e.Position.X, "y", e.Position.Y)
	case !claim:
		h.claimed = false
	}
	return claim
}

// Touch handles an event delivered directly to the container. It
// reports whether the event was consumed; events are not consumed
// while the container is detached.
func (h *HScroll) Touch(e pointer.Event) bool {
	if !h.scroll.Attached() {
		return false
	}
	h.configure()
	h.state = h.scroll.Touch(e, h.state)
	if e.Kind == pointer.Release {
		h.claimed = false
		if a := h.scroll.Animation(); a.Active() {
			h.Logger.V(1).Info("settle", "from", a.From, "to", a.To, "duration", a.Duration)
		}
	}
	return true
}

// Frame advances the settle animation to now and reports whether the
// host should schedule another frame.
func (h *HScroll) Frame(now time.Duration) bool {
	var active bool
	h.state, active = h.scroll.Frame(now, h.state)
	return active
}

// Offset returns the scroll offset used to translate children.
func (h *HScroll) Offset() int {
	return h.state.Offset
}

// ScrollState returns the scroll offset and extents.
func (h *HScroll) ScrollState() gesture.ScrollState {
	return h.state
}

// State reports whether the container is idle, dragging or settling.
func (h *HScroll) State() gesture.State {
	return h.scroll.State()
}

// Decision reports the interception verdict for the current gesture.
func (h *HScroll) Decision() gesture.Decision {
	return h.scroll.Arbiter().Decision()
}

func (h *HScroll) configure() {
	h.scroll.Threshold = h.FlingThreshold
	h.scroll.Duration = h.SettleDuration
	h.scroll.SetDeadzone(h.Metric.Dp(h.Deadzone))
}
