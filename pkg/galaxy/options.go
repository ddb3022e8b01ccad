package galaxy

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/galaxy/pkg/config"
	"github.com/matzehuels/galaxy/pkg/eventbus"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/grid"
	"github.com/matzehuels/galaxy/pkg/observability"
	"github.com/matzehuels/galaxy/pkg/spotlight"
	"github.com/matzehuels/galaxy/pkg/tooltip"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

// DefaultFetchTimeout bounds a single spotlight detail fetch.
const DefaultFetchTimeout = 3 * time.Second

// DefaultCell is the pixel size of a terminal cell used by text rendering.
var DefaultCell = geometry.Size{W: 8, H: 16}

// Options configures a View.
type Options struct {
	Grid      grid.Options
	Spotlight spotlight.Options

	// DisableSpotlight turns the rotation off.
	DisableSpotlight bool

	Debounce     time.Duration
	Frame        time.Duration
	FetchTimeout time.Duration

	// Tooltip is the size of the spotlight tooltip box.
	Tooltip       geometry.Size
	TooltipMargin float64

	// Cell is the size in pixels of one terminal cell when the view is
	// rendered as text.
	Cell geometry.Size

	Clock  clockwork.Clock
	Logger *log.Logger
	Hooks  observability.Hooks

	// Bus receives the view's events. A private bus is created when nil.
	Bus *eventbus.Bus[Event]
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Grid:          grid.DefaultOptions(),
		Debounce:      viewport.DefaultDebounce,
		Frame:         viewport.FrameInterval,
		FetchTimeout:  DefaultFetchTimeout,
		Tooltip:       geometry.Size{W: 260, H: 180},
		TooltipMargin: tooltip.DefaultMargin,
		Cell:          DefaultCell,
	}
}

// OptionsFromConfig maps a loaded configuration onto view options.
func OptionsFromConfig(c config.Config) Options {
	o := DefaultOptions()
	if c.Layout.Gap != nil {
		o.Grid.Gap = *c.Layout.Gap
	}
	o.Grid.ResizeThreshold = c.Layout.ResizeThreshold
	o.Grid.VirtualizeMinItems = c.Layout.VirtualizeMinItems
	o.Grid.VirtualizeMaxTile = c.Layout.VirtualizeMaxTile
	o.Grid.BufferRows = c.Layout.BufferRows
	o.Debounce = c.Layout.Debounce
	o.Frame = c.Layout.Frame

	o.DisableSpotlight = c.Spotlight.Disabled
	o.Spotlight.InitialDelay = c.Spotlight.InitialDelay
	o.Spotlight.Interval = c.Spotlight.Interval
	o.Spotlight.Attempts = c.Spotlight.Attempts
	o.FetchTimeout = c.Spotlight.FetchTimeout

	o.Tooltip = geometry.Size{W: c.Tooltip.Width, H: c.Tooltip.Height}
	o.TooltipMargin = c.Tooltip.Margin
	return o
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Debounce <= 0 {
		o.Debounce = d.Debounce
	}
	if o.Frame <= 0 {
		o.Frame = d.Frame
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = d.FetchTimeout
	}
	if o.Tooltip.Empty() {
		o.Tooltip = d.Tooltip
	}
	if o.Cell.Empty() {
		o.Cell = d.Cell
	}
	if o.TooltipMargin < 0 {
		o.TooltipMargin = 0
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Bus == nil {
		o.Bus = eventbus.New[Event]()
	}

	if o.Grid.Logger == nil {
		o.Grid.Logger = o.Logger
	}
	o.Grid.Hooks = mergeHooks(o.Grid.Hooks, o.Hooks)
	if o.Spotlight.Clock == nil {
		o.Spotlight.Clock = o.Clock
	}
	if o.Spotlight.Logger == nil {
		o.Spotlight.Logger = o.Logger
	}
	o.Spotlight.Hooks = mergeHooks(o.Spotlight.Hooks, o.Hooks)
	return o
}

// mergeHooks fills unset categories of h from fallback.
func mergeHooks(h, fallback observability.Hooks) observability.Hooks {
	if h.LayoutHooks == nil {
		h.LayoutHooks = fallback.LayoutHooks
	}
	if h.SpotlightHooks == nil {
		h.SpotlightHooks = fallback.SpotlightHooks
	}
	if h.CacheHooks == nil {
		h.CacheHooks = fallback.CacheHooks
	}
	return h
}
