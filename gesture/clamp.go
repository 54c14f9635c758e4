// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/touchkit/hscroll/internal/fling"
)

// ScrollState is the horizontal scroll position of a container
// together with the extents that bound it. Offset is kept in
// [0, max(0, Content-Viewport)].
type ScrollState struct {
	Offset   int
	Content  int
	Viewport int
}

// Max returns the largest legal offset.
func (st ScrollState) Max() int {
	return max(0, st.Content-st.Viewport)
}

// Resize updates the extents and pins Offset to the new legal range.
func (st ScrollState) Resize(content, viewport int) ScrollState {
	st.Content, st.Viewport = content, viewport
	st.Offset = max(0, min(st.Offset, st.Max()))
	return st
}

// Clamp returns the part of the pointer displacement delta that can be
// applied to st without leaving the legal range. A negative delta
// moves the content left and increases the offset. Clamp returns 0 if
// the content fits the viewport.
func Clamp(delta int, st ScrollState) int {
	maxOff := st.Content - st.Viewport
	if maxOff <= 0 {
		return 0
	}
	if delta <= 0 {
		if st.Offset == maxOff {
			return 0
		}
		return max(delta, st.Offset-maxOff)
	}
	if st.Offset == 0 {
		return 0
	}
	return min(st.Offset, delta)
}

// Settle returns the animation that brings st to rest after a release
// at time now. Vx is the offset velocity in pixels per second; if its
// magnitude reaches threshold the content travels a further |vx|
// pixels, clamped to the legal range. The animation is started even
// when it covers no distance.
func Settle(st ScrollState, vx, threshold float32, now, d time.Duration) fling.Animation {
	dx := 0
	if abs(vx) >= threshold {
		dx = -Clamp(-int(math.Round(float64(vx))), st)
	}
	var a fling.Animation
	a.Start(now, st.Offset, st.Offset+dx, d)
	return a
}

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
