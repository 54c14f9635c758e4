// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"
)

func TestAnimationMonotonic(t *testing.T) {
	var a Animation
	a.Start(0, 0, 100, 500*time.Millisecond)
	if got := a.At(0); got != 0 {
		t.Errorf("At(0) = %d, want 0", got)
	}
	if got := a.At(500 * time.Millisecond); got != 100 {
		t.Errorf("At(500ms) = %d, want 100", got)
	}
	prev := a.At(0)
	for ts := time.Duration(0); ts <= 500*time.Millisecond; ts += time.Millisecond {
		v := a.At(ts)
		if v < prev {
			t.Fatalf("At(%v) = %d decreased from %d", ts, v, prev)
		}
		if v < 0 || v > 100 {
			t.Fatalf("At(%v) = %d out of [0, 100]", ts, v)
		}
		prev = v
	}
}

func TestAnimationBackwards(t *testing.T) {
	var a Animation
	begin := 3 * time.Second
	a.Start(begin, 700, 500, 500*time.Millisecond)
	prev := a.At(begin)
	if prev != 700 {
		t.Fatalf("At(begin) = %d, want 700", prev)
	}
	for ts := begin; ts <= begin+500*time.Millisecond; ts += 10 * time.Millisecond {
		v := a.At(ts)
		if v > prev {
			t.Fatalf("At(%v) = %d increased from %d", ts, v, prev)
		}
		prev = v
	}
	if prev != 500 {
		t.Errorf("final offset %d, want 500", prev)
	}
	// Ease-out: more than half the distance is covered at half time.
	if mid := a.At(begin + 250*time.Millisecond); mid >= 600 {
		t.Errorf("At(half time) = %d, want < 600", mid)
	}
}

func TestAnimationTick(t *testing.T) {
	var a Animation
	if a.Active() {
		t.Fatal("zero Animation is active")
	}
	a.Start(time.Second, 10, 10, 500*time.Millisecond)
	for ts := time.Second; ts < 1500*time.Millisecond; ts += 16 * time.Millisecond {
		v, active := a.Tick(ts)
		if !active {
			t.Fatalf("Tick(%v) finished early", ts)
		}
		if v != 10 {
			t.Fatalf("Tick(%v) = %d on a zero distance animation", ts, v)
		}
	}
	v, active := a.Tick(1600 * time.Millisecond)
	if active || v != 10 {
		t.Errorf("Tick past the end = %d, %v; want 10, false", v, active)
	}
	if a.Active() {
		t.Error("animation still active after completion")
	}
}

func TestAnimationStop(t *testing.T) {
	var a Animation
	a.Start(0, 0, 200, 500*time.Millisecond)
	at, _ := a.Tick(100 * time.Millisecond)
	a.Stop()
	if a.Active() {
		t.Fatal("Stop left the animation active")
	}
	v, active := a.Tick(time.Second)
	if active {
		t.Error("Tick reported a stopped animation as active")
	}
	if v != at {
		t.Errorf("stopped animation ticked to %d, want it to stay at %d", v, at)
	}
}

func TestAnimationRetarget(t *testing.T) {
	var a Animation
	a.Start(0, 200, 700, 500*time.Millisecond)
	a.Tick(50 * time.Millisecond)
	a.Retarget(0, 100)
	if a.From != 100 || a.To != 100 {
		t.Fatalf("Retarget(0, 100) = %d -> %d, want 100 -> 100", a.From, a.To)
	}
	for ts := 66 * time.Millisecond; a.Active(); ts += 16 * time.Millisecond {
		if v, _ := a.Tick(ts); v < 0 || v > 100 {
			t.Fatalf("Tick(%v) = %d, outside [0, 100]", ts, v)
		}
	}
}
