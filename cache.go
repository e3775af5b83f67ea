package browserx

import (
	"golang.org/x/exp/maps"
)

// ResponseCache stores decoded response bodies keyed by scheme+host+path.
// Entries live for the life of the process; there is no eviction and no
// expiry, so dynamic content served from here can be stale. The cache is an
// explicit, long-lived dependency shared across agents rather than per-URL
// state.
//
// Like the rest of the request path it is owned by a single goroutine and is
// not safe for concurrent use.
type ResponseCache struct {
	entries map[string]string
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]string),
	}
}

func (c *ResponseCache) Get(key string) (string, bool) {
	body, ok := c.entries[key]
	return body, ok
}

// Put stores a decoded body unless cacheControl disallows it. An absent
// Cache-Control value or `no-store` makes this a no-op.
func (c *ResponseCache) Put(key, body, cacheControl string) {
	if cacheControl == "" || cacheControl == "no-store" {
		return
	}
	c.entries[key] = body
}

func (c *ResponseCache) Len() int {
	return len(c.entries)
}

// Keys returns a snapshot of the cached resource keys, in no particular
// order.
func (c *ResponseCache) Keys() []string {
	return maps.Keys(c.entries)
}
