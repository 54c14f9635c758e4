// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events delivered
// by the host to a view.
type Event interface {
	ImplementsEvent()
}
