// Package galaxy hosts the grid engine and the spotlight rotation in one
// event loop.
//
// A [View] is a bubbletea model. Every input the engine reacts to arrives as
// a message: resize and scroll notifications from the host, item sequences
// from the profile store, and the view's own timer and fetch completions.
// Because bubbletea calls Update from a single goroutine, the committed
// layout and the spotlight state are owned by the view alone and replaced
// wholesale on each recomputation.
//
// Hosts supply a [viewport.Provider] and only signal that something changed
// ([ResizeMsg], [ScrollMsg]). The view reads the provider when a resize burst
// settles or a scroll frame runs, so it always works with current
// dimensions. Changes are published as [Event] values on an
// [eventbus.Bus]; the terminal preview renders them and the websocket
// server streams them to browsers.
//
// The view can run inside an interactive program or headless:
//
//	p := tea.NewProgram(view,
//	    tea.WithContext(ctx),
//	    tea.WithInput(nil),
//	    tea.WithOutput(io.Discard),
//	    tea.WithoutRenderer(),
//	    tea.WithoutSignalHandler(),
//	)
package galaxy
