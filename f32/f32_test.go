// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"testing"
)

func TestPointInt(t *testing.T) {
	for _, tc := range []struct {
		p    Point
		want image.Point
	}{
		{Pt(0, 0), image.Pt(0, 0)},
		{Pt(10.9, 3.2), image.Pt(10, 3)},
		{Pt(-1.5, -0.5), image.Pt(-1, 0)},
	} {
		if got := tc.p.Int(); got != tc.want {
			t.Errorf("%v.Int() = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestPointArith(t *testing.T) {
	a, b := Pt(1, 2), Pt(3, -4)
	if got, want := a.Add(b), Pt(4, -2); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), Pt(-2, 6); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
