// Package pkg provides the libraries behind galaxy, an adaptive grid of
// profile tiles with a rotating spotlight.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Layout - [geometry] solves the grid, [grid] commits layouts and
//     virtualizes large collections, [tooltip] places the spotlight box
//  2. Runtime - [viewport] tracks container dimensions, [spotlight]
//     schedules the rotation, [galaxy] ties both into a Bubble Tea model,
//     [eventbus] fans events out to subscribers
//  3. Infrastructure - [profile] stores, [cache], [config], [errors],
//     [observability] and [buildinfo]
//
// # Data Flow
//
//	viewport.Provider (container size, scroll)
//	         ↓
//	    viewport.Tracker (coalesce resize bursts)
//	         ↓
//	    grid.Engine (solve, virtualize)
//	         ↓
//	    spotlight.Scheduler → profile.Store (fetch detail)
//	         ↓
//	    tooltip.Place → galaxy.Frame
//
// # Quick Start
//
//	store := profile.NewMemoryStore(profile.Synthetic(500, 1, time.Now())...)
//	provider := viewport.NewStatic(geometry.Size{W: 1280, H: 800})
//	view := galaxy.New(ctx, store, provider, galaxy.DefaultOptions())
//	defer view.Close()
//
//	p := tea.NewProgram(view)
//	_, err := p.Run()
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/geometry
// [grid]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/grid
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/tooltip
// [viewport]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/viewport
// [spotlight]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/spotlight
// [galaxy]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/galaxy
// [eventbus]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/eventbus
// [profile]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/profile
// [cache]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/galaxy/pkg/buildinfo
package pkg
