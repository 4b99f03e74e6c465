package sokocache

import "sync"

// FlushOnce wraps SaveToFile in a sync.Once guard so a cache is flushed
// exactly once regardless of how many shutdown paths (signal handler,
// explicit admin call, deferred cleanup) race to trigger it.
type FlushOnce struct {
	once sync.Once
	c    *Cache
	path string
	err  error
}

// NewFlushOnce binds a Cache to the file path it should be saved to on
// shutdown.
func NewFlushOnce(c *Cache, path string) *FlushOnce {
	return &FlushOnce{c: c, path: path}
}

// Flush saves the cache the first time it is called; subsequent calls are
// no-ops. The error from the one real save is returned to every caller.
func (f *FlushOnce) Flush() error {
	f.once.Do(func() {
		f.err = f.c.SaveToFile(f.path)
	})
	return f.err
}
