package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple deployments can
// share one backend without key collisions. The server uses this to
// separate instances that point at the same Redis.
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

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// StatsKey generates a prefixed key for fetched statistics.
func (k *ScopedKeyer) StatsKey(username string, opts StatsKeyOpts) string {
	return k.prefix + k.inner.StatsKey(username, opts)
}

// CardKey generates a prefixed key for a rendered card.
func (k *ScopedKeyer) CardKey(username string, opts CardKeyOpts) string {
	return k.prefix + k.inner.CardKey(username, opts)
}
