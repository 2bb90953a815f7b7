// Package ratelimit implements the per-(remote address, method pattern)
// sliding-window limiter described in spec §4.3: HTTP request rate,
// subscription-creation rate ("subscription:create"), per-topic
// delivery rate ("subscription:<Topic>"), and WebSocket handshake rate
// ("ws:connect"). No pack file implements a JSON-RPC rate limiter
// directly; the bucket/Rule/Limiter shape follows the small-struct +
// constructor + table-driven-test idiom used throughout the teacher
// repo's own packages.
package ratelimit

import (
	"strings"
	"sync"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// numSlots subdivides a bucket's window into fixed-size time slots. A
// slot's bit is cleared (and its count zeroed) lazily, when a later
// Allow call finds the window has rotated past it. Allow tests all
// numSlots bits on every call, so its cost is O(numSlots) regardless of
// how many slots are occupied.
const numSlots = 60

// Rule binds a method pattern to a request budget. Pattern may end in
// "*" to match any method sharing that prefix (§4.3).
type Rule struct {
	Pattern string
	Limit   int
	Window  time.Duration
}

func (r Rule) matches(method string) bool {
	if strings.HasSuffix(r.Pattern, "*") {
		return strings.HasPrefix(method, strings.TrimSuffix(r.Pattern, "*"))
	}
	return r.Pattern == method
}

// Limiter evaluates Rules longest-prefix-first per distinct
// (remote_addr, matched pattern) key (§4.3 steps 1-3).
type Limiter struct {
	mu       sync.Mutex
	rules    []Rule // sorted longest pattern first
	fallback Rule
	buckets  map[string]*bucket
}

// New builds a Limiter. fallback is applied when no rule's pattern
// matches the requested method (§4.3 step 2). Rules are re-sorted
// internally so callers may pass them in any order.
func New(fallback Rule, rules ...Rule) *Limiter {
	sorted := append([]Rule(nil), rules...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j].Pattern) > len(sorted[j-1].Pattern); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return &Limiter{rules: sorted, fallback: fallback, buckets: make(map[string]*bucket)}
}

// Allow reports whether a request from remoteAddr against method (or a
// synthetic pattern like "subscription:create") is admitted, per the
// matched Rule's budget. It never blocks.
func (l *Limiter) Allow(remoteAddr, method string) bool {
	rule := l.match(method)
	key := remoteAddr + "|" + rule.Pattern

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule.Limit, rule.Window)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	return b.allow()
}

func (l *Limiter) match(method string) Rule {
	for _, r := range l.rules {
		if r.matches(method) {
			return r
		}
	}
	return l.fallback
}

// bucket is a sliding-window counter for one (remote_addr, pattern) key.
type bucket struct {
	mu         sync.Mutex
	limit      int
	slotDur    time.Duration
	occupied   *bitset.BitSet
	counts     [numSlots]int32
	lastSlot   int64
	lastSeenOk bool
}

func newBucket(limit int, window time.Duration) *bucket {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &bucket{
		limit:    limit,
		slotDur:  window / numSlots,
		occupied: bitset.New(numSlots),
	}
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.slotDur <= 0 {
		b.slotDur = time.Millisecond
	}
	current := time.Now().UnixNano() / int64(b.slotDur)
	b.expire(current)

	var total int32
	for i := uint(0); i < numSlots; i++ {
		if b.occupied.Test(i) {
			total += b.counts[i]
		}
	}
	if int(total) >= b.limit {
		return false
	}

	idx := uint(current % numSlots)
	b.counts[idx]++
	b.occupied.Set(idx)
	return true
}

// expire clears every slot the window has rotated past since the last
// observed slot, so stale counts never inflate the current total.
func (b *bucket) expire(current int64) {
	if !b.lastSeenOk {
		b.lastSeenOk = true
		b.lastSlot = current
		return
	}
	span := current - b.lastSlot
	if span <= 0 {
		return
	}
	if span > numSlots {
		span = numSlots
	}
	for i := int64(0); i < span; i++ {
		idx := uint((b.lastSlot + 1 + i) % numSlots)
		b.counts[idx] = 0
		b.occupied.Clear(idx)
	}
	b.lastSlot = current
}
