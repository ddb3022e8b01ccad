package viewport

import (
	"sync"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

// Provider reports the geometry of the surface hosting a galaxy grid.
// Implementations must be safe for concurrent use: hosts update them from
// their own input goroutines while the view reads them from its event loop.
type Provider interface {
	// Bounds returns the grid container rectangle in screen coordinates.
	Bounds() geometry.Rect

	// Window returns the size of the visible screen area.
	Window() geometry.Size

	// ScrollOffset returns how far the grid content is scrolled down.
	ScrollOffset() float64
}

// Static is an in-memory Provider whose values are set explicitly.
type Static struct {
	mu     sync.RWMutex
	bounds geometry.Rect
	window geometry.Size
	scroll float64
}

// NewStatic creates a Static provider for a container filling a window of
// the given size.
func NewStatic(window geometry.Size) *Static {
	s := &Static{}
	s.Fill(window)
	return s
}

// Bounds implements Provider.
func (s *Static) Bounds() geometry.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bounds
}

// Window implements Provider.
func (s *Static) Window() geometry.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

// ScrollOffset implements Provider.
func (s *Static) ScrollOffset() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scroll
}

// Fill sets the window size and makes the container cover all of it.
func (s *Static) Fill(window geometry.Size) {
	window = window.Clamp()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
	s.bounds = geometry.Rect{W: window.W, H: window.H}
}

// SetBounds sets the container rectangle.
func (s *Static) SetBounds(r geometry.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = r
}

// SetWindow sets the visible screen size.
func (s *Static) SetWindow(size geometry.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = size.Clamp()
}

// SetScroll sets the scroll offset; negative offsets are stored as zero.
func (s *Static) SetScroll(offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll = max(offset, 0)
}

var _ Provider = (*Static)(nil)
