// Package geometry solves the square-tile grid that best fills a container.
//
// # Overview
//
// Every profile in the galaxy is drawn as a square tile. Given the number of
// tiles and the container dimensions, [Solve] searches every feasible column
// count and returns the [Layout] with the largest tile that still fits both
// axes. Among candidates with the same tile size, the one wasting the fewest
// pixels (summed over both axes) wins, and remaining ties go to the smaller
// column count.
//
// # Solving a Layout
//
//	l := geometry.Solve(250, 1280, 720, geometry.DefaultGap)
//	fmt.Println(l.Columns, l.TileSize, l.Rows)
//
// Degenerate inputs never fail: zero items produce a single empty column with
// zero-sized tiles, and zero-sized containers clamp tiles to [MinTilePx].
//
// # Tile Coordinates
//
// [Layout.Cell] maps a flat index to its row and column, and [Layout.Rect]
// returns the tile rectangle relative to the container's top-left corner:
//
//	x = col * (tileSize + gap)
//	y = row * (tileSize + gap)
//
// The package is pure: no state, no I/O, deterministic for identical inputs.
package geometry
