// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Row packs children left to right, each child offset by its
// margins, inside the container padding.
type Row struct {
	Padding Inset
}

// Child is a measured child box.
type Child struct {
	Size   image.Point
	Margin Inset
}

// Arrangement is the result of laying out a Row.
type Arrangement struct {
	Dimensions
	// Content is the horizontal extent of the children, their
	// margins and the container padding.
	Content int
	// Placements are the child boxes in container coordinates,
	// before scrolling.
	Placements []image.Rectangle
}

// Layout measures the row against cs and places children. An
// empty row has the padding as its only content.
func (r Row) Layout(cs Constraints, children []Child) Arrangement {
	a := Arrangement{
		Placements: make([]image.Rectangle, 0, len(children)),
	}
	left := r.Padding.Left
	maxHeight := 0
	for _, c := range children {
		pos := image.Point{
			X: left + c.Margin.Left,
			Y: r.Padding.Top + c.Margin.Top,
		}
		a.Placements = append(a.Placements, image.Rectangle{Min: pos, Max: pos.Add(c.Size)})
		left += c.Margin.Left + c.Size.X + c.Margin.Right
		if h := c.Size.Y + c.Margin.Vertical(); h > maxHeight {
			maxHeight = h
		}
	}
	a.Content = left + r.Padding.Right
	a.Size.X = cs.Width.Resolve(a.Content)
	// A wrapped height is not cut to the budget; children are
	// never clipped vertically.
	a.Size.Y = maxHeight + r.Padding.Vertical()
	if cs.Height.Mode == Fill {
		a.Size.Y = max(0, cs.Height.Max)
	}
	return a
}
