// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRowPlacements(t *testing.T) {
	r := Row{Padding: Inset{Top: 4, Left: 10, Right: 6, Bottom: 2}}
	children := []Child{
		{Size: image.Pt(100, 40), Margin: Inset{Left: 5, Right: 5, Top: 3, Bottom: 1}},
		{Size: image.Pt(50, 60)},
		{Size: image.Pt(20, 10), Margin: Inset{Left: 2, Top: 7}},
	}
	a := r.Layout(Exact(image.Pt(300, 200)), children)
	want := []image.Rectangle{
		image.Rect(15, 7, 115, 47),
		image.Rect(120, 4, 170, 64),
		image.Rect(172, 11, 192, 21),
	}
	if diff := cmp.Diff(want, a.Placements); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	// 10 + (5+100+5) + 50 + (2+20) + 6
	if got, want := a.Content, 198; got != want {
		t.Errorf("content = %d, want %d", got, want)
	}
	if got, want := a.Size, image.Pt(300, 200); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestRowSizing(t *testing.T) {
	r := Row{Padding: Inset{Top: 5, Bottom: 5, Left: 10, Right: 10}}
	children := []Child{
		{Size: image.Pt(200, 30), Margin: Inset{Top: 2, Bottom: 8}},
		{Size: image.Pt(300, 50)},
	}
	// Content is 520 wide, 60 high with padding.
	for _, tc := range []struct {
		label string
		cs    Constraints
		want  image.Point
	}{
		{"fill both", Constraints{Constraint{400, Fill}, Constraint{100, Fill}}, image.Pt(400, 100)},
		{"wrap both overflowing", Constraints{Constraint{400, Wrap}, Constraint{100, Wrap}}, image.Pt(400, 60)},
		{"wrap both fitting", Constraints{Constraint{1000, Wrap}, Constraint{100, Wrap}}, image.Pt(520, 60)},
		{"wrap height only", Constraints{Constraint{1000, Fill}, Constraint{100, Wrap}}, image.Pt(1000, 60)},
		{"wrap width only", Constraints{Constraint{1000, Wrap}, Constraint{100, Fill}}, image.Pt(520, 100)},
		{"wrap height over budget", Constraints{Constraint{400, Fill}, Constraint{20, Wrap}}, image.Pt(400, 60)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			a := r.Layout(tc.cs, children)
			if a.Size != tc.want {
				t.Errorf("size = %v, want %v", a.Size, tc.want)
			}
			if a.Content != 520 {
				t.Errorf("content = %d, want 520", a.Content)
			}
		})
	}
}

func TestRowEmpty(t *testing.T) {
	r := Row{Padding: Inset{Top: 3, Bottom: 4, Left: 5, Right: 6}}
	a := r.Layout(Constraints{Constraint{100, Wrap}, Constraint{100, Wrap}}, nil)
	if a.Content != 11 {
		t.Errorf("content = %d, want 11", a.Content)
	}
	if got, want := a.Size, image.Pt(11, 7); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
	if len(a.Placements) != 0 {
		t.Errorf("placements = %v, want none", a.Placements)
	}
	var zero Row
	if a := zero.Layout(Exact(image.Pt(0, 0)), nil); a.Size != (image.Point{}) || a.Content != 0 {
		t.Errorf("zero row: %+v", a)
	}
}

func TestModeText(t *testing.T) {
	for _, tc := range []struct {
		text string
		want Mode
	}{
		{"fill", Fill},
		{"match", Fill},
		{"wrap", Wrap},
		{"content", Wrap},
	} {
		var m Mode
		if err := m.UnmarshalText([]byte(tc.text)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", tc.text, err)
		}
		if m != tc.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tc.text, m, tc.want)
		}
	}
	var m Mode
	if err := m.UnmarshalText([]byte("stretch")); err == nil {
		t.Error("UnmarshalText accepted an unknown mode")
	}
}
