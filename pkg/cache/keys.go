package cache

import "strings"

// Keyer generates cache keys for profile data.
type Keyer interface {
	// DetailKey returns the key for the detail record of profile id.
	DetailKey(id string) string

	// ItemsKey returns the key for the ordered item sequence.
	ItemsKey() string
}

// DefaultKeyer produces plain, human-readable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DetailKey returns "profile:detail:<id>".
func (DefaultKeyer) DetailKey(id string) string {
	return "profile:detail:" + strings.TrimSpace(id)
}

// ItemsKey returns "profile:items".
func (DefaultKeyer) ItemsKey() string {
	return "profile:items"
}

// KeyType reports the kind of key, for cache hooks. It returns the segment
// after the first prefix ("detail", "items") or "unknown".
func KeyType(key string) string {
	_, rest, ok := strings.Cut(key, "profile:")
	if !ok {
		return "unknown"
	}
	kind, _, _ := strings.Cut(rest, ":")
	if kind == "" {
		return "unknown"
	}
	return kind
}
