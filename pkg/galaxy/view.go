package galaxy

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/galaxy/pkg/eventbus"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/grid"
	"github.com/matzehuels/galaxy/pkg/profile"
	"github.com/matzehuels/galaxy/pkg/spotlight"
	"github.com/matzehuels/galaxy/pkg/tooltip"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

// View owns the committed layout and spotlight of one rendered galaxy.
// Update must be called from a single goroutine; Close may be called from
// any goroutine.
type View struct {
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	opts   Options
	store  profile.Store
	bus    *eventbus.Bus[Event]
	logger *log.Logger
	clock  clockwork.Clock

	tracker *viewport.Tracker
	engine  *grid.Engine
	sched   *spotlight.Scheduler

	items   []profile.Item
	dims    viewport.Dimensions
	scroll  float64
	window  grid.Window
	tooltip *tooltip.Placement
}

// New creates a view over store, reading geometry from provider. The view
// stops when ctx is cancelled or Close is called.
func New(ctx context.Context, store profile.Store, provider viewport.Provider, opts Options) *View {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(ctx)

	v := &View{
		ctx:     ctx,
		cancel:  cancel,
		opts:    opts,
		store:   store,
		bus:     opts.Bus,
		logger:  opts.Logger,
		clock:   opts.Clock,
		tracker: viewport.NewTracker(provider),
		engine:  grid.New(opts.Grid),
	}
	v.sched = spotlight.New(v.locate, opts.Spotlight)
	return v
}

// Bus returns the bus the view publishes on.
func (v *View) Bus() *eventbus.Bus[Event] { return v.bus }

// Layout returns the committed layout.
func (v *View) Layout() geometry.Layout { return v.engine.Layout() }

// Window returns the current render window.
func (v *View) Window() grid.Window { return v.window }

// Items returns the current item sequence.
func (v *View) Items() []profile.Item { return v.items }

// Spotlight returns the current spotlight and its tooltip placement.
func (v *View) Spotlight() SpotlightState {
	return SpotlightState{State: v.sched.State(), Tooltip: v.tooltip}
}

// Dimensions returns the dimensions of the last settled resize.
func (v *View) Dimensions() viewport.Dimensions { return v.dims }

// Closed reports whether the view has been torn down.
func (v *View) Closed() bool { return v.closed.Load() }

// Close tears the view down: pending timers return without firing and
// in-flight fetch results are discarded.
func (v *View) Close() {
	if v.closed.Swap(true) {
		return
	}
	v.cancel()
}

// Init loads the item sequence and reads the initial dimensions.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.load(), func() tea.Msg { return ResizeMsg{} })
}

// Update implements tea.Model.
func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.closed.Load() {
		if v.sched.Phase() != spotlight.PhaseClosed {
			v.sched.Close()
		}
		return v, nil
	}

	switch msg := msg.(type) {
	case ResizeMsg:
		seq := v.tracker.Observe()
		return v, v.after(v.opts.Debounce, settleMsg{seq: seq})

	case settleMsg:
		dims, ok := v.tracker.Settle(msg.seq)
		if !ok {
			return v, nil
		}
		v.dims = dims
		if v.engine.Resize(v.ctx, dims.Container()) {
			v.publishLayout()
		}
		v.refreshWindow()
		v.reposition()
		return v, nil

	case ScrollMsg:
		if v.tracker.RequestFrame() {
			return v, v.after(v.opts.Frame, frameMsg{})
		}
		return v, nil

	case frameMsg:
		v.scroll = v.tracker.Frame()
		v.refreshWindow()
		v.reposition()
		return v, nil

	case ReloadMsg:
		return v, v.load()

	case ItemsMsg:
		if msg.Err != nil {
			v.logger.Error("load profiles", "error", msg.Err)
			return v, nil
		}
		return v, v.setItems(msg.Items)

	case rotateMsg:
		tick, ok := v.sched.Tick(msg.gen)
		if !ok {
			return v, nil
		}
		id := v.items[tick.Index].ID
		return v, tea.Batch(
			v.fetch(msg.gen, tick.Index, id),
			v.after(tick.Next.Delay, rotateMsg{gen: tick.Next.Gen}),
		)

	case detailMsg:
		switch v.sched.Resolve(v.ctx, msg.result) {
		case spotlight.Activated:
			v.placeTooltip()
			v.publishSpotlight()
		case spotlight.Failed, spotlight.Missed:
			v.tooltip = nil
			v.publishSpotlight()
		}
		return v, nil

	case CloseMsg:
		v.Close()
		v.sched.Close()
		return v, nil
	}
	return v, nil
}

// View implements tea.Model.
func (v *View) View() string {
	return Render(v.Frame())
}

// setItems installs a new item sequence. The rotation restarts only when
// the sequence identity changed.
func (v *View) setItems(items []profile.Item) tea.Cmd {
	changed := !sameSequence(v.items, items)
	v.items = items
	if v.engine.SetItemCount(v.ctx, len(items)) {
		v.publishLayout()
	}
	v.refreshWindow()
	if !changed {
		return nil
	}

	wasActive := v.sched.State().Active()
	if v.opts.DisableSpotlight {
		return nil
	}
	// the spotlighted index may now name another profile
	if st := v.sched.State(); st.Active() && !showsProfile(items, st) {
		v.sched.Clear()
	}
	timer, ok := v.sched.Reset(len(items))
	if wasActive && !v.sched.State().Active() {
		v.tooltip = nil
		v.publishSpotlight()
	} else {
		v.reposition()
	}
	if !ok {
		return nil
	}
	return v.after(timer.Delay, rotateMsg{gen: timer.Gen})
}

func (v *View) refreshWindow() {
	w := v.engine.Window(v.ctx, v.scroll, v.dims.Window.H)
	if w == v.window {
		return
	}
	v.window = w
	v.bus.Publish(Event{Type: EventWindow, Window: &WindowState{
		Window:      w,
		Scroll:      v.scroll,
		Virtualized: v.engine.Virtualized(),
	}})
}

// reposition moves an active spotlight to its tile's current position.
func (v *View) reposition() {
	st, changed := v.sched.Reposition()
	if !changed {
		return
	}
	if st.Active() {
		v.placeTooltip()
	} else {
		v.tooltip = nil
	}
	v.publishSpotlight()
}

func (v *View) placeTooltip() {
	st := v.sched.State()
	if !st.Active() {
		v.tooltip = nil
		return
	}
	p := tooltip.Place(st.Position, v.opts.Tooltip, v.dims.Window, v.opts.TooltipMargin)
	v.tooltip = &p
}

// locate is the spotlight Locator: the tile center in screen coordinates.
func (v *View) locate(index int) (geometry.Point, bool) {
	return v.engine.TilePosition(index, v.dims.Bounds.Origin(), v.scroll)
}

func (v *View) publishLayout() {
	v.bus.Publish(Event{Type: EventLayout, Layout: &LayoutState{
		Layout:      v.engine.Layout(),
		Items:       v.engine.ItemCount(),
		Container:   v.engine.Size(),
		Dimensions:  v.dims,
		Virtualized: v.engine.Virtualized(),
	}})
}

func (v *View) publishSpotlight() {
	st := v.Spotlight()
	v.bus.Publish(Event{Type: EventSpotlight, Spotlight: &st})
}

// after returns a command that delivers msg after d on the view's clock, or
// nothing once the view is closed.
func (v *View) after(d time.Duration, msg tea.Msg) tea.Cmd {
	ctx, clock := v.ctx, v.clock
	return func() tea.Msg {
		t := clock.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-t.Chan():
			return msg
		}
	}
}

func (v *View) load() tea.Cmd {
	ctx, store := v.ctx, v.store
	return func() tea.Msg {
		items, err := store.Items(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return ItemsMsg{Items: items, Err: err}
	}
}

func (v *View) fetch(gen uint64, index int, id string) tea.Cmd {
	ctx, store, clock, timeout := v.ctx, v.store, v.clock, v.opts.FetchTimeout
	return func() tea.Msg {
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		start := clock.Now()
		d, err := store.Detail(fctx, id)
		if ctx.Err() != nil {
			return nil
		}
		return detailMsg{result: spotlight.Result{
			Gen:     gen,
			Index:   index,
			Detail:  d,
			Err:     err,
			Elapsed: clock.Since(start),
		}}
	}
}

// showsProfile reports whether the spotlighted index still holds the
// profile whose detail is shown.
func showsProfile(items []profile.Item, st spotlight.State) bool {
	return st.Index < len(items) && st.Detail != nil && items[st.Index].ID == st.Detail.ID
}

func sameSequence(a, b []profile.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

var _ tea.Model = (*View)(nil)
