// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events.

Events are delivered in the local coordinate system of the receiving
view, in temporal order: a Press, zero or more Moves, then a Release
or Cancel. A Cancel is sent when the gesture was taken away from the
receiver, typically because an enclosing view intercepted it.
*/
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/touchkit/hscroll/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the local coordinate
	// system of the receiving view.
	Position f32.Point
}

type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pressed pointer.
	Move
)

const (
	// Touch generated event.
	Touch Source = iota
	// Mouse generated event.
	Mouse
)

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Move; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

// MarshalText encodes a single Kind by its lower case name.
func (t Kind) MarshalText() ([]byte, error) {
	switch t {
	case Press, Release, Cancel, Move:
		return []byte(strings.ToLower(t.string())), nil
	}
	return nil, fmt.Errorf("pointer: cannot marshal kind %d", uint(t))
}

// UnmarshalText decodes a single Kind from its name. Matching is
// case insensitive and accepts the "down" and "up" aliases.
func (t *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "press", "down":
		*t = Press
	case "move":
		*t = Move
	case "release", "up":
		*t = Release
	case "cancel":
		*t = Cancel
	default:
		return fmt.Errorf("pointer: unknown event kind %q", text)
	}
	return nil
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

func (e Event) String() string {
	return fmt.Sprintf("%v#%d@%v %v", e.Kind, e.PointerID, e.Time, e.Position)
}

func (Event) ImplementsEvent() {}
