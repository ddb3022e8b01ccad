package galaxy

import (
	"github.com/matzehuels/galaxy/pkg/profile"
	"github.com/matzehuels/galaxy/pkg/spotlight"
)

// ResizeMsg tells the view that the container or window size may have
// changed. The new size is read from the provider once the burst settles.
type ResizeMsg struct{}

// ScrollMsg tells the view that the scroll offset may have changed. The
// offset is read from the provider when the next frame runs.
type ScrollMsg struct{}

// ItemsMsg delivers a new item sequence. A non-nil Err keeps the current
// sequence.
type ItemsMsg struct {
	Items []profile.Item
	Err   error
}

// ReloadMsg asks the view to reload the item sequence from its store.
type ReloadMsg struct{}

// CloseMsg tears the view down from inside the event loop.
type CloseMsg struct{}

type settleMsg struct{ seq uint64 }

type frameMsg struct{}

type rotateMsg struct{ gen uint64 }

type detailMsg struct{ result spotlight.Result }
