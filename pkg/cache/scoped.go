package cache

// ScopedKeyer wraps a Keyer with a prefix so several galaxies can share one
// cache backend without colliding.
//
// Example usage:
//
//	// Keys for the staging galaxy in a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "galaxy:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DetailKey generates a prefixed detail key.
func (k *ScopedKeyer) DetailKey(id string) string {
	return k.prefix + k.inner.DetailKey(id)
}

// ItemsKey generates a prefixed items key.
func (k *ScopedKeyer) ItemsKey() string {
	return k.prefix + k.inner.ItemsKey()
}
