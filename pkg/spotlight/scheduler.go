package spotlight

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/observability"
	"github.com/matzehuels/galaxy/pkg/profile"
)

// Default rotation timing.
const (
	DefaultInitialDelay = 2 * time.Second
	DefaultInterval     = 5 * time.Second
)

// Phase is the state of the rotation.
type Phase int

const (
	PhaseIdle    Phase = iota // no items, nothing scheduled
	PhaseWaiting              // a timer is armed, no spotlight shown
	PhaseActive               // a spotlight is shown, next timer armed
	PhaseClosed               // torn down
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWaiting:
		return "waiting"
	case PhaseActive:
		return "active"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Locator returns the screen position of tile index in the current layout,
// or false if the index is not laid out.
type Locator func(index int) (geometry.Point, bool)

// Options configures a Scheduler. Zero values select the defaults.
type Options struct {
	InitialDelay time.Duration
	Interval     time.Duration
	Attempts     int
	Source       Source
	Clock        clockwork.Clock
	Logger       *log.Logger
	Hooks        observability.Hooks
}

func (o Options) withDefaults() Options {
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.Source == nil {
		o.Source = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// State is the published spotlight. Index is -1 when no tile is
// spotlighted.
type State struct {
	Index     int             `json:"index"`
	Position  geometry.Point  `json:"position"`
	StartedAt time.Time       `json:"started_at"`
	Detail    *profile.Detail `json:"detail,omitempty"`
}

// Active reports whether a tile is spotlighted.
func (s State) Active() bool { return s.Index >= 0 }

var inactive = State{Index: -1}

// Timer asks the host to call Tick(Gen) after Delay.
type Timer struct {
	Gen   uint64
	Delay time.Duration
}

// Tick is the result of a fired timer: the index to fetch and the timer to
// arm next.
type Tick struct {
	Index int
	Next  Timer
}

// Result is the outcome of the host's detail fetch for a ticked index.
type Result struct {
	Gen     uint64
	Index   int
	Detail  *profile.Detail
	Err     error
	Elapsed time.Duration
}

// Outcome reports what Resolve did with a Result.
type Outcome int

const (
	Discarded Outcome = iota // stale generation, superseded tick or closed
	Activated                // spotlight shown
	Failed                   // fetch failed, spotlight cleared
	Missed                   // profile or tile gone, spotlight cleared
)

func (o Outcome) String() string {
	switch o {
	case Activated:
		return "activated"
	case Failed:
		return "failed"
	case Missed:
		return "missed"
	default:
		return "discarded"
	}
}

// Scheduler is the rotation state machine. It is not safe for concurrent
// use; the owning view drives it from its event loop.
type Scheduler struct {
	opts   Options
	locate Locator
	logger *log.Logger
	hooks  observability.SpotlightHooks

	phase   Phase
	gen     uint64
	count   int
	started bool
	prev    int
	pending int
	state   State
}

// New creates an idle scheduler that locates tiles with locate.
func New(locate Locator, opts Options) *Scheduler {
	opts = opts.withDefaults()
	if locate == nil {
		locate = func(int) (geometry.Point, bool) { return geometry.Point{}, false }
	}
	return &Scheduler{
		opts:    opts,
		locate:  locate,
		logger:  opts.Logger,
		hooks:   opts.Hooks.Spotlight(),
		prev:    -1,
		pending: -1,
		state:   inactive,
	}
}

// Phase returns the current phase.
func (s *Scheduler) Phase() Phase { return s.phase }

// State returns the current spotlight.
func (s *Scheduler) State() State { return s.state }

// Generation returns the current timer generation.
func (s *Scheduler) Generation() uint64 { return s.gen }

// Reset starts a new generation for an item sequence of count items and
// returns the timer to arm. Timers and fetches of earlier generations
// become stale. The first timer uses the initial delay, later ones the
// rotation interval. A spotlight whose index no longer exists is cleared.
// No timer is returned for an empty sequence or a closed scheduler.
func (s *Scheduler) Reset(count int) (Timer, bool) {
	if s.phase == PhaseClosed {
		return Timer{}, false
	}

	s.gen++
	s.count = max(count, 0)
	s.pending = -1
	if s.state.Index >= s.count {
		s.state = inactive
	}
	if s.prev >= s.count {
		s.prev = -1
	}

	if s.count == 0 {
		s.phase = PhaseIdle
		return Timer{}, false
	}
	if !s.state.Active() {
		s.phase = PhaseWaiting
	}

	delay := s.opts.Interval
	if !s.started {
		delay = s.opts.InitialDelay
	}
	return Timer{Gen: s.gen, Delay: delay}, true
}

// Tick handles a fired timer. It picks the next index and returns it with
// the timer to arm next. Ticks of an earlier generation report false and
// must not be rearmed.
func (s *Scheduler) Tick(gen uint64) (Tick, bool) {
	if s.phase == PhaseClosed || gen != s.gen || s.count == 0 {
		return Tick{}, false
	}

	s.started = true
	idx := Pick(s.opts.Source, s.count, s.prev, s.opts.Attempts)
	s.prev = idx
	s.pending = idx
	return Tick{
		Index: idx,
		Next:  Timer{Gen: s.gen, Delay: s.opts.Interval},
	}, true
}

// Resolve applies the fetch result for the most recent tick.
func (s *Scheduler) Resolve(ctx context.Context, r Result) Outcome {
	if s.phase == PhaseClosed || r.Gen != s.gen || r.Index != s.pending {
		return Discarded
	}
	s.pending = -1

	switch {
	case r.Err != nil:
		s.miss(ctx, r.Index, "fetch failed", r.Err)
		return Failed
	case r.Detail == nil:
		s.miss(ctx, r.Index, "profile not found", nil)
		return Missed
	case r.Index >= s.count:
		s.miss(ctx, r.Index, "stale index", nil)
		return Missed
	}

	pos, ok := s.locate(r.Index)
	if !ok {
		s.miss(ctx, r.Index, "tile not laid out", nil)
		return Missed
	}

	s.state = State{
		Index:     r.Index,
		Position:  pos,
		StartedAt: s.opts.Clock.Now(),
		Detail:    r.Detail,
	}
	s.phase = PhaseActive
	s.hooks.OnSpotlight(ctx, r.Index, r.Detail.ID, r.Elapsed)
	s.logger.Debug("spotlight", "index", r.Index, "id", r.Detail.ID, "fetch", r.Elapsed)
	return Activated
}

// Reposition recomputes the position of the active spotlight from the
// current layout, keeping its index. It reports whether the state changed.
func (s *Scheduler) Reposition() (State, bool) {
	if !s.state.Active() {
		return s.state, false
	}

	pos, ok := s.locate(s.state.Index)
	if !ok || s.state.Index >= s.count {
		s.state = inactive
		if s.phase == PhaseActive {
			s.phase = PhaseWaiting
		}
		return s.state, true
	}
	if pos == s.state.Position {
		return s.state, false
	}
	s.state.Position = pos
	return s.state, true
}

// Clear drops the active spotlight, keeping the rotation armed. It reports
// whether a spotlight was active.
func (s *Scheduler) Clear() bool {
	if !s.state.Active() {
		return false
	}
	s.state = inactive
	if s.phase == PhaseActive {
		s.phase = PhaseWaiting
	}
	return true
}

// Close tears the scheduler down. Later ticks and results are discarded.
func (s *Scheduler) Close() {
	s.phase = PhaseClosed
	s.gen++
	s.pending = -1
	s.state = inactive
}

func (s *Scheduler) miss(ctx context.Context, index int, reason string, err error) {
	s.state = inactive
	s.phase = PhaseWaiting
	if err != nil {
		s.logger.Warn("spotlight fetch failed", "index", index, "error", err)
	} else {
		s.logger.Debug("spotlight skipped", "index", index, "reason", reason)
	}
	s.hooks.OnSpotlightMiss(ctx, index, reason, err)
}
