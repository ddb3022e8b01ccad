// Package viewport abstracts the hosting surface of a galaxy view.
//
// A [Provider] answers the three questions the layout and spotlight code
// needs from a rendering surface: where the grid container sits on screen,
// how large the visible window is, and how far the grid has been scrolled.
// Hosts (a terminal program, a websocket session, a test) implement it or use
// the in-memory [Static].
//
// A [Tracker] turns bursts of resize and scroll notifications into single
// recomputations. Resize notifications are sequenced: only the last
// notification of a burst settles, and it reads the provider at settle time so
// the engine always sees the latest dimensions rather than the ones observed
// when the burst began. Scroll notifications are coalesced per frame and the
// offset is likewise read when the frame runs.
package viewport
