// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the geometry of a horizontally scrolling
row: measuring the container against the host's constraints and
placing each child box.

All sizes are in pixels.
*/
package layout

import (
	"fmt"
	"image"
)

// Constraints represent the size budget offered by the host
// for the width and height of a container.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is the budget in a single dimension.
type Constraint struct {
	Max  int
	Mode Mode
}

// Mode selects how a container sizes itself in a dimension.
type Mode uint8

// Dimensions are the resolved size of a container.
type Dimensions struct {
	Size image.Point
}

// Inset is space around a box, such as a container's padding
// or a child's margins.
type Inset struct {
	Top, Right, Bottom, Left int
}

const (
	// Fill uses the full budget regardless of content.
	Fill Mode = iota
	// Wrap sizes to the content, bounded by the budget.
	Wrap
)

// Exact returns the constraints that fill size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Width:  Constraint{Max: size.X, Mode: Fill},
		Height: Constraint{Max: size.Y, Mode: Fill},
	}
}

// Resolve returns the size in the dimension for content of size v.
func (c Constraint) Resolve(v int) int {
	budget := max(0, c.Max)
	if c.Mode == Wrap {
		return min(v, budget)
	}
	return budget
}

// Vertical returns the sum of the top and bottom insets.
func (in Inset) Vertical() int {
	return in.Top + in.Bottom
}

func (m Mode) String() string {
	switch m {
	case Fill:
		return "Fill"
	case Wrap:
		return "Wrap"
	default:
		panic("unreachable")
	}
}

// MarshalText encodes m by its lower case name.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Fill:
		return []byte("fill"), nil
	case Wrap:
		return []byte("wrap"), nil
	}
	return nil, fmt.Errorf("layout: invalid mode %d", m)
}

// UnmarshalText decodes a Mode. "match" is accepted as an alias
// for fill and "content" for wrap.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fill", "match", "":
		*m = Fill
	case "wrap", "content":
		*m = Wrap
	default:
		return fmt.Errorf("layout: unknown mode %q", text)
	}
	return nil
}
