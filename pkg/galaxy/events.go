package galaxy

import (
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/grid"
	"github.com/matzehuels/galaxy/pkg/spotlight"
	"github.com/matzehuels/galaxy/pkg/tooltip"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

// EventType names the payload an Event carries.
type EventType string

const (
	EventLayout    EventType = "layout"
	EventWindow    EventType = "window"
	EventSpotlight EventType = "spotlight"
)

// Event is published on the view's bus whenever derived state changes.
// Exactly one payload is set, matching Type.
type Event struct {
	Type      EventType       `json:"type"`
	Layout    *LayoutState    `json:"layout,omitempty"`
	Window    *WindowState    `json:"window,omitempty"`
	Spotlight *SpotlightState `json:"spotlight,omitempty"`
}

// LayoutState is a committed layout and what it was solved for.
type LayoutState struct {
	geometry.Layout
	Items       int                 `json:"items"`
	Container   geometry.Size       `json:"container"`
	Dimensions  viewport.Dimensions `json:"dimensions"`
	Virtualized bool                `json:"virtualized"`
}

// WindowState is the range of items to render.
type WindowState struct {
	grid.Window
	Scroll      float64 `json:"scroll"`
	Virtualized bool    `json:"virtualized"`
}

// SpotlightState is the spotlight and, when active, its tooltip placement.
type SpotlightState struct {
	spotlight.State
	Tooltip *tooltip.Placement `json:"tooltip,omitempty"`
}
