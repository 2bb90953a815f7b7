// Package feed is a small generic broadcaster: one producer, many
// independent consumers, each reading at its own pace. It is the
// internal transport from an adapter's event stream to the Subscription
// Manager's event pump (§4.8). The shape (Feed[T], Subscription[T],
// Subscribe/SubscribeKeepLast/Unsubscribe/Recv) is reconstructed from
// every call site of juno's feed package visible in
// rpc/v8/subscriptions.go (h.newHeads.SubscribeKeepLast(), reorgSub.Recv(),
// sub.Unsubscribe()), since the feed package itself was not retrieved.
package feed

import "sync"

// Feed broadcasts values of type T to every current subscriber.
type Feed[T any] struct {
	mu   sync.Mutex
	subs map[*Subscription[T]]struct{}
}

// New constructs an empty Feed.
func New[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[*Subscription[T]]struct{})}
}

// Subscription is one consumer's view of a Feed. Recv returns the
// channel to range/select over; Unsubscribe detaches, typically via
// defer, and may be called more than once.
type Subscription[T any] struct {
	feed     any // *Feed[T], kept untyped to avoid a cyclic generic field
	ch       chan T
	keepLast bool
	closed   bool
	unsub    func()
}

// Recv returns the channel subscribers read from.
func (s *Subscription[T]) Recv() <-chan T { return s.ch }

// Unsubscribe detaches from the feed and closes the channel. Safe to
// call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.unsub()
}

// Subscribe returns a subscription with a small buffer; a slow consumer
// that falls behind simply blocks the Send call for that one
// subscriber's channel (callers needing non-blocking fan-out should
// read via a select with a default, as the Subscription Manager does).
func (f *Feed[T]) Subscribe() *Subscription[T] {
	return f.subscribe(8, false)
}

// SubscribeKeepLast returns a subscription with buffer size 1 where a
// Send that finds the buffer full drops the previously queued value in
// favor of the new one — appropriate for "latest head" style feeds
// where only the newest value matters (matches
// h.newHeads.SubscribeKeepLast() in rpc/v8/subscriptions.go).
func (f *Feed[T]) SubscribeKeepLast() *Subscription[T] {
	return f.subscribe(1, true)
}

func (f *Feed[T]) subscribe(buf int, keepLast bool) *Subscription[T] {
	sub := &Subscription[T]{ch: make(chan T, buf), keepLast: keepLast}
	sub.unsub = sync.OnceFunc(func() {
		f.mu.Lock()
		delete(f.subs, sub)
		f.mu.Unlock()
		close(sub.ch)
	})
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	return sub
}

// Send delivers v to every current subscriber. Subscriptions created
// with SubscribeKeepLast never block: a full buffer is drained of its
// stale value first. Ordinary subscriptions block the sender until the
// slow consumer catches up, so producers that cannot tolerate blocking
// should subscribe with SubscribeKeepLast or fan out via their own
// non-blocking queue (as the Subscription Manager's pump does for
// client sinks).
func (f *Feed[T]) Send(v T) {
	f.mu.Lock()
	subs := make([]*Subscription[T], 0, len(f.subs))
	for s := range f.subs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		if s.keepLast {
			select {
			case s.ch <- v:
			default:
				select {
				case <-s.ch:
				default:
				}
				select {
				case s.ch <- v:
				default:
				}
			}
			continue
		}
		s.ch <- v
	}
}
