// Package spotlight rotates a highlighted tile through the galaxy.
//
// The rotation is a small state machine driven by its host's event loop:
//
//	Idle → Waiting(initial delay) → Active → Waiting(interval) → Active → ...
//
// [Scheduler] owns the state but not the clock: [Scheduler.Reset] returns
// the [Timer] the host must arm, and the host reports back with
// [Scheduler.Tick] when it fires. Each Reset starts a new generation, so
// ticks and fetch results belonging to an earlier item sequence are
// recognised and dropped rather than applied to stale geometry.
//
// On every tick the scheduler draws a new index with [Pick], which avoids
// repeating the previous spotlight while bounding the number of draws. The
// host fetches the chosen profile asynchronously and hands the result to
// [Scheduler.Resolve], which locates the tile through a [Locator] and
// either activates the spotlight or records a miss.
package spotlight
