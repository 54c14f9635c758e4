// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the horizontal scroll container and the
// child controls it hosts. Widgets contain persistent state and
// process pointer events delivered by the host; drawing is left to
// the host, which reads the placements and scroll offset back.
package widget
