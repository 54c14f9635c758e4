// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"
)

// Animation interpolates an integer offset from From to To over
// Duration with an ease-out curve. The zero value is inactive.
type Animation struct {
	From, To int
	// Begin is the time the animation started, in the same time
	// base as the pointer events that triggered it.
	Begin    time.Duration
	Duration time.Duration

	active bool
	// last is the most recent ticked offset.
	last int
}

// Start the animation at time now.
func (a *Animation) Start(now time.Duration, from, to int, d time.Duration) {
	*a = Animation{
		From:     from,
		To:       to,
		Begin:    now,
		Duration: d,
		active:   true,
		last:     from,
	}
}

// Active reports whether the animation is still running.
func (a *Animation) Active() bool {
	return a.active
}

// Stop the animation at its current position.
func (a *Animation) Stop() {
	a.active = false
}

// At returns the interpolated offset at time now. At is
// monotonic in now, equals From at Begin and equals To
// from Begin+Duration onwards.
func (a *Animation) At(now time.Duration) int {
	elapsed := now - a.Begin
	switch {
	case elapsed >= a.Duration:
		return a.To
	case elapsed <= 0:
		return a.From
	}
	p := float64(elapsed) / float64(a.Duration)
	dist := float64(a.To - a.From)
	return a.From + int(math.Round(dist*easeOut(p)))
}

// Tick returns the offset at time now and whether the
// animation needs further ticks. The animation ends once its
// duration has elapsed. An inactive animation stays at the
// offset of its last tick.
func (a *Animation) Tick(now time.Duration) (int, bool) {
	if !a.active {
		return a.last, false
	}
	a.last = a.At(now)
	if now-a.Begin >= a.Duration {
		a.active = false
	}
	return a.last, a.active
}

// Retarget limits the remaining animation to offsets in [lo, hi].
func (a *Animation) Retarget(lo, hi int) {
	a.From = max(lo, min(a.From, hi))
	a.To = max(lo, min(a.To, hi))
	a.last = max(lo, min(a.last, hi))
}

// easeOut is a cubic deceleration curve over [0, 1].
func easeOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
