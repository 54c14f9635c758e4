// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"math"
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		label string
		delta int
		st    ScrollState
		want  int
	}{
		{"drag left from start", -50, ScrollState{0, 1000, 300}, -50},
		{"drag left at right edge", -50, ScrollState{700, 1000, 300}, 0},
		{"drag left past right edge", -50, ScrollState{680, 1000, 300}, -20},
		{"drag right at start", 50, ScrollState{0, 1000, 300}, 0},
		{"drag right past start", 50, ScrollState{30, 1000, 300}, 30},
		{"drag right inside", 50, ScrollState{400, 1000, 300}, 50},
		{"zero delta", 0, ScrollState{100, 1000, 300}, 0},
		{"content fits", -50, ScrollState{0, 300, 300}, 0},
		{"content smaller", 40, ScrollState{0, 100, 300}, 0},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if got := Clamp(tc.delta, tc.st); got != tc.want {
				t.Errorf("Clamp(%d, %+v) = %d, want %d", tc.delta, tc.st, got, tc.want)
			}
		})
	}
}

func TestClampIdempotentAtBounds(t *testing.T) {
	for _, content := range []int{301, 500, 1000, 5000} {
		st := ScrollState{Offset: 0, Content: content, Viewport: 300}
		for d := 1; d < 2000; d += 37 {
			if got := Clamp(d, st); got != 0 {
				t.Fatalf("Clamp(%d) at offset 0 = %d, want 0", d, got)
			}
		}
		st.Offset = st.Max()
		for d := 0; d > -2000; d -= 37 {
			if got := Clamp(d, st); got != 0 {
				t.Fatalf("Clamp(%d) at offset %d = %d, want 0", d, st.Offset, got)
			}
		}
	}
}

func TestClampBounded(t *testing.T) {
	for _, content := range []int{0, 100, 300, 301, 1000} {
		for off := 0; off <= max(0, content-300); off += 7 {
			for d := -1200; d <= 1200; d += 13 {
				st := ScrollState{Offset: off, Content: content, Viewport: 300}
				next := off - Clamp(d, st)
				if next < 0 || next > st.Max() {
					t.Fatalf("offset %d - Clamp(%d) = %d, outside [0, %d]", off, d, next, st.Max())
				}
			}
		}
	}
}

func TestClampNoOverflow(t *testing.T) {
	for _, content := range []int{0, 1, 150, 300} {
		for d := -500; d <= 500; d += 25 {
			st := ScrollState{Offset: 0, Content: content, Viewport: 300}
			if got := Clamp(d, st); got != 0 {
				t.Fatalf("Clamp(%d) with content %d = %d, want 0", d, content, got)
			}
		}
	}
}

func TestClampExtremes(t *testing.T) {
	st := ScrollState{Offset: 300, Content: 1000, Viewport: 300}
	if got := Clamp(math.MinInt, st); got != -400 {
		t.Errorf("Clamp(MinInt) = %d, want -400", got)
	}
	if got := Clamp(math.MaxInt, st); got != 300 {
		t.Errorf("Clamp(MaxInt) = %d, want 300", got)
	}
}

func TestResize(t *testing.T) {
	st := ScrollState{Offset: 650, Content: 1000, Viewport: 300}
	st = st.Resize(800, 300)
	if st.Offset != 500 {
		t.Errorf("offset after shrink = %d, want 500", st.Offset)
	}
	st = st.Resize(200, 300)
	if st.Offset != 0 {
		t.Errorf("offset after content fits = %d, want 0", st.Offset)
	}
}

func TestSettle(t *testing.T) {
	const d = 500 * time.Millisecond
	for _, tc := range []struct {
		label  string
		st     ScrollState
		vx     float32
		target int
	}{
		{"slow release", ScrollState{100, 1000, 300}, 49.9, 100},
		{"zero velocity", ScrollState{100, 1000, 300}, 0, 100},
		{"threshold reached", ScrollState{100, 1000, 300}, 50, 150},
		{"fling towards start", ScrollState{100, 1000, 300}, -200, 0},
		{"fling towards start inside", ScrollState{500, 1000, 300}, -200, 300},
		{"fling towards end", ScrollState{100, 1000, 300}, 200, 300},
		{"fling clamped at end", ScrollState{650, 1000, 300}, 200, 700},
		{"fling rounds", ScrollState{100, 1000, 300}, 120.6, 221},
		{"fling without overflow", ScrollState{0, 200, 300}, 900, 0},
	} {
		t.Run(tc.label, func(t *testing.T) {
			now := 2 * time.Second
			a := Settle(tc.st, tc.vx, DefaultFlingThreshold, now, d)
			if !a.Active() {
				t.Fatal("settle animation not started")
			}
			if a.From != tc.st.Offset || a.To != tc.target {
				t.Errorf("animation %d -> %d, want %d -> %d", a.From, a.To, tc.st.Offset, tc.target)
			}
			if got := a.At(now + d); got != tc.target {
				t.Errorf("offset after %v = %d, want %d", d, got, tc.target)
			}
		})
	}
}
