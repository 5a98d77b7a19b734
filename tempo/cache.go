// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/audfx/audio"
	"golang.org/x/sync/singleflight"
)

// Estimate is a memoized tempo result. Err is ErrIndeterminate (possibly
// wrapped) when no BPM is available.
type Estimate struct {
	BPM int
	Err error
}

// Known reports whether BPM holds a usable value.
func (e Estimate) Known() bool { return e.Err == nil }

// Cache memoizes tempo estimates per source content. Concurrent requests
// for the same source share a single computation.
type Cache struct {
	mtx     sync.Mutex
	entries map[string]Estimate
	epoch   uint64 // bumped by Forget and Reset
	group   singleflight.Group

	mixdown bool
	runs    atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMixdown analyses the average of all channels instead of channel 0.
func WithMixdown(enabled bool) CacheOption {
	return func(c *Cache) { c.mixdown = enabled }
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{entries: make(map[string]Estimate)}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get returns the estimate for b, computing it on first use.
func (c *Cache) Get(b *audio.Buffer) Estimate {
	return c.Lookup(b.Fingerprint(), b)
}

// Lookup is Get with a precomputed fingerprint.
func (c *Cache) Lookup(key string, b *audio.Buffer) Estimate {
	if e, ok := c.cached(key); ok {
		return e
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		if e, ok := c.cached(key); ok {
			return e, nil
		}

		epoch := c.currentEpoch()
		e := c.estimate(b)
		c.store(key, e, epoch)

		return e, nil
	})

	return v.(Estimate)
}

// Forget drops the estimate stored under key. A computation already in
// flight still answers its callers but is not stored.
func (c *Cache) Forget(key string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.epoch++
	delete(c.entries, key)
	c.group.Forget(key)
}

// Reset drops every stored estimate, including those still being computed.
func (c *Cache) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.epoch++
	c.entries = make(map[string]Estimate)
}

// Len returns the number of stored estimates.
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.entries)
}

// Runs returns how many estimates have actually been computed.
func (c *Cache) Runs() int64 { return c.runs.Load() }

func (c *Cache) cached(key string) (Estimate, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	e, ok := c.entries[key]
	return e, ok
}

func (c *Cache) currentEpoch() uint64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.epoch
}

// store keeps e unless the cache was forgotten or reset after epoch was
// taken.
func (c *Cache) store(key string, e Estimate, epoch uint64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.epoch != epoch {
		return
	}
	c.entries[key] = e
}

func (c *Cache) estimate(b *audio.Buffer) Estimate {
	c.runs.Add(1)

	if err := b.Validate(); err != nil {
		return Estimate{Err: err}
	}

	samples := b.Channels[0]
	if c.mixdown && b.NumChannels() > 1 {
		mono, err := audio.MixDown(b)
		if err != nil {
			return Estimate{Err: err}
		}
		samples = mono
	}

	bpm, err := EstimateBPM(samples, b.Rate)
	return Estimate{BPM: bpm, Err: err}
}
