package viewport

import (
	"time"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

const (
	// DefaultDebounce is the quiet period after the last resize notification
	// before the layout is recomputed.
	DefaultDebounce = 100 * time.Millisecond

	// FrameInterval is the minimum spacing of scroll recomputations.
	FrameInterval = 16 * time.Millisecond
)

// Dimensions is a snapshot of the hosting surface.
type Dimensions struct {
	Bounds geometry.Rect `json:"bounds"`
	Window geometry.Size `json:"window"`
}

// Container returns the container size.
func (d Dimensions) Container() geometry.Size {
	return geometry.Size{W: d.Bounds.W, H: d.Bounds.H}
}

// Tracker sequences resize notifications and coalesces scroll notifications
// for a single view. It is not safe for concurrent use; the owning view calls
// it from its event loop.
type Tracker struct {
	provider Provider

	seq       uint64
	committed Dimensions
	settled   bool

	framePending bool
}

// NewTracker creates a Tracker reading from p.
func NewTracker(p Provider) *Tracker {
	return &Tracker{provider: p}
}

// Provider returns the provider the tracker reads from.
func (t *Tracker) Provider() Provider { return t.provider }

// Observe records a resize notification and returns its sequence number.
// The caller schedules Settle with this number after the quiet period.
func (t *Tracker) Observe() uint64 {
	t.seq++
	return t.seq
}

// Pending returns the sequence number of the latest resize notification.
func (t *Tracker) Pending() uint64 { return t.seq }

// Settle reports the latest dimensions if seq is the most recent resize
// notification. Earlier notifications of the same burst report false.
func (t *Tracker) Settle(seq uint64) (Dimensions, bool) {
	if seq != t.seq {
		return Dimensions{}, false
	}
	t.committed = t.Current()
	t.settled = true
	return t.committed, true
}

// Current reads the provider now.
func (t *Tracker) Current() Dimensions {
	return Dimensions{Bounds: t.provider.Bounds(), Window: t.provider.Window()}
}

// Committed returns the dimensions of the last settled notification, and
// whether any notification has settled yet.
func (t *Tracker) Committed() (Dimensions, bool) {
	return t.committed, t.settled
}

// RequestFrame records a scroll notification. It reports true when no frame
// is pending yet, in which case the caller schedules one.
func (t *Tracker) RequestFrame() bool {
	if t.framePending {
		return false
	}
	t.framePending = true
	return true
}

// Frame clears the pending frame and returns the scroll offset at the time
// the frame runs.
func (t *Tracker) Frame() float64 {
	t.framePending = false
	return t.provider.ScrollOffset()
}
