package grid

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/observability"
)

const (
	// DefaultResizeThreshold is the smallest dimension change, in pixels,
	// that triggers a new layout.
	DefaultResizeThreshold = 0.5

	// DefaultVirtualizeMinItems is the item count from which windowing is
	// considered.
	DefaultVirtualizeMinItems = 2000

	// DefaultVirtualizeMaxTile is the tile edge, in pixels, at or below which
	// large galaxies are windowed.
	DefaultVirtualizeMaxTile = 8.0

	// DefaultBufferRows is the number of extra rows rendered above and below
	// the viewport when windowing.
	DefaultBufferRows = 5
)

// Options configures an Engine. Zero fields take the defaults above, except
// Gap and BufferRows where zero is meaningful; use DefaultOptions for those.
type Options struct {
	Gap                float64
	ResizeThreshold    float64
	VirtualizeMinItems int
	VirtualizeMaxTile  float64
	BufferRows         int

	Logger *log.Logger
	Hooks  observability.Hooks
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Gap:                geometry.DefaultGap,
		ResizeThreshold:    DefaultResizeThreshold,
		VirtualizeMinItems: DefaultVirtualizeMinItems,
		VirtualizeMaxTile:  DefaultVirtualizeMaxTile,
		BufferRows:         DefaultBufferRows,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.ResizeThreshold <= 0 {
		o.ResizeThreshold = d.ResizeThreshold
	}
	if o.VirtualizeMinItems <= 0 {
		o.VirtualizeMinItems = d.VirtualizeMinItems
	}
	if o.VirtualizeMaxTile <= 0 {
		o.VirtualizeMaxTile = d.VirtualizeMaxTile
	}
	if o.BufferRows < 0 {
		o.BufferRows = 0
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}
