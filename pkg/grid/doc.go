// Package grid owns the committed galaxy layout and decides which tiles to
// render.
//
// An [Engine] keeps the last [geometry.Layout] solved for the current item
// count and container size. It recomputes on every item count change and on
// container resizes larger than [Options.ResizeThreshold]; bursts of resize
// events are expected to be coalesced by the caller (see package viewport)
// so that the engine only ever sees the latest settled dimensions.
//
// # Virtualization
//
// Small galaxies render every tile. Once the item count reaches
// [Options.VirtualizeMinItems] and the solved tile shrinks to
// [Options.VirtualizeMaxTile] or below, [Engine.Window] returns only the rows
// intersecting the scrolled viewport plus [Options.BufferRows] rows of slack
// on each side:
//
//	startRow = max(0, floor(offset/rowHeight) - buffer)
//	endRow   = min(rows, startRow + visibleRows + 2*buffer)
//
// Every tile whose rectangle touches the viewport is always inside the
// returned [Window].
package grid
