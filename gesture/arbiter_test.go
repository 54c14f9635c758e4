// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"
	"time"

	"github.com/touchkit/hscroll/f32"
	"github.com/touchkit/hscroll/io/pointer"
)

func TestArbiterDominantAxis(t *testing.T) {
	for _, tc := range []struct {
		label  string
		dx, dy float32
		want   bool
	}{
		{"horizontal", 10, 2, true},
		{"vertical", 2, 10, false},
		{"tie", 10, 10, false},
		{"tie negative", -10, 10, false},
		{"leftwards", -6, 5, true},
		{"one pixel", 1, 0, true},
		{"still", 0, 0, false},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var a Arbiter
			if a.Intercept(press(0, 100, 100), false) {
				t.Fatal("press was intercepted")
			}
			got := a.Intercept(move(10*time.Millisecond, 100+tc.dx, 100+tc.dy), false)
			if got != tc.want {
				t.Errorf("Intercept(move %v,%v) = %v, want %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestArbiterLatch(t *testing.T) {
	var a Arbiter
	a.Intercept(press(0, 50, 50), false)
	if !a.Intercept(move(10*time.Millisecond, 70, 52), false) {
		t.Fatal("horizontal move not intercepted")
	}
	// Vertical jitter must not give the gesture back.
	for i, p := range []f32.Point{{X: 70, Y: 90}, {X: 71, Y: 150}, {X: 71, Y: 151}} {
		if !a.Intercept(move(time.Duration(20+i)*time.Millisecond, p.X, p.Y), false) {
			t.Fatalf("move %d to %v released the gesture", i, p)
		}
	}
	if got := a.Decision(); got != Intercepting {
		t.Errorf("Decision() = %v, want Intercepting", got)
	}
	if a.Intercept(release(time.Second, 71, 151), false) {
		t.Error("release was intercepted")
	}
	if got := a.State(); got != ArbiterIdle {
		t.Errorf("State() after release = %v, want Idle", got)
	}
	if got := a.Decision(); got != Undecided {
		t.Errorf("Decision() after release = %v, want Undecided", got)
	}
}

func TestArbiterReevaluatesPerSample(t *testing.T) {
	var a Arbiter
	a.Intercept(press(0, 0, 0), false)
	// Vertical first: yield to the ancestor.
	if a.Intercept(move(10*time.Millisecond, 2, 20), false) {
		t.Fatal("vertical move intercepted")
	}
	if got := a.State(); got != ArbiterUndecided {
		t.Fatalf("State() = %v, want Undecided", got)
	}
	// The next sample is compared to the previous one, not the press.
	if !a.Intercept(move(20*time.Millisecond, 12, 22), false) {
		t.Fatal("horizontal sample after a vertical one not intercepted")
	}
	if got, want := a.Session().Last.X, 12; got != want {
		t.Errorf("session X = %d, want %d", got, want)
	}
}

func TestArbiterSettlingPress(t *testing.T) {
	var a Arbiter
	if !a.Intercept(press(0, 10, 10), true) {
		t.Fatal("press during settle not intercepted")
	}
	if got := a.State(); got != ArbiterOwns {
		t.Errorf("State() = %v, want OwnsGesture", got)
	}
	if !a.Intercept(move(time.Millisecond, 10, 40), false) {
		t.Error("claimed gesture released on vertical move")
	}
}

func TestArbiterDeadzone(t *testing.T) {
	a := Arbiter{Deadzone: 8}
	a.Intercept(press(0, 0, 0), false)
	if a.Intercept(move(time.Millisecond, 8, 0), false) {
		t.Fatal("move inside the deadzone intercepted")
	}
	if !a.Intercept(move(2*time.Millisecond, 17, 0), false) {
		t.Fatal("move beyond the deadzone not intercepted")
	}
}

func TestArbiterCancel(t *testing.T) {
	var a Arbiter
	a.Intercept(press(0, 0, 0), false)
	a.Intercept(pointer.Event{Kind: pointer.Cancel, Time: time.Millisecond}, false)
	if got := a.Decision(); got != NotIntercepting {
		t.Fatalf("Decision() after cancel = %v", got)
	}
	if a.Intercept(move(2*time.Millisecond, 50, 0), false) {
		t.Fatal("declined gesture intercepted")
	}
	a.Intercept(press(time.Second, 0, 0), false)
	if got := a.State(); got != ArbiterUndecided {
		t.Errorf("State() after new press = %v, want Undecided", got)
	}
}

func TestArbiterOtherPointer(t *testing.T) {
	var a Arbiter
	a.Intercept(press(0, 0, 0), false)
	other := move(time.Millisecond, 40, 0)
	other.PointerID = 2
	if a.Intercept(other, false) {
		t.Fatal("second pointer claimed the gesture")
	}
	if got := a.Session().Last; got.X != 0 {
		t.Errorf("second pointer moved the session to %v", got)
	}
}

func press(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, Time: t, Position: f32.Pt(x, y)}
}

func move(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Move, Source: pointer.Touch, Time: t, Position: f32.Pt(x, y)}
}

func release(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Time: t, Position: f32.Pt(x, y)}
}
