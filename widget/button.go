// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/gesture"
	"github.com/touchkit/hscroll/io/pointer"
)

// Clickable is a child control that consumes the presses it
// receives and turns completed ones into clicks.
type Clickable struct {
	click   gesture.Click
	clicks  int
	cancels int
	history []Press
}

// Press represents a past pointer press.
type Press struct {
	Position f32.Point
	Time     time.Duration
}

// Touch handles an event delivered to the control. Every event is
// consumed so that the control becomes the target of the gesture.
func (b *Clickable) Touch(e pointer.Event) bool {
	ev, ok := b.click.Update(e)
	if !ok {
		return true
	}
	switch ev.Type {
	case gesture.TypeClick:
		b.clicks++
	case gesture.TypeCancel:
		b.cancels++
	case gesture.TypePress:
		b.prune(e.Time)
		b.history = append(b.history, Press{
			Position: ev.Position,
			Time:     e.Time,
		})
	}
	return true
}

// Clicks returns and clears the number of clicks since the last
// call to Clicks.
func (b *Clickable) Clicks() int {
	n := b.clicks
	b.clicks = 0
	return n
}

// Cancels returns and clears the number of presses that were taken
// away by an enclosing container.
func (b *Clickable) Cancels() int {
	n := b.cancels
	b.cancels = 0
	return n
}

// Pressed reports whether a pointer is pressed on the control.
func (b *Clickable) Pressed() bool {
	return b.click.State() == gesture.StatePressed
}

// History is the past pointer presses useful for drawing markers.
// Presses older than a second before now are dropped.
func (b *Clickable) History(now time.Duration) []Press {
	b.prune(now)
	return b.history
}

func (b *Clickable) prune(now time.Duration) {
	for len(b.history) > 0 {
		if now-b.history[0].Time < time.Second {
			break
		}
		n := copy(b.history, b.history[1:])
		b.history = b.history[:n]
	}
}
