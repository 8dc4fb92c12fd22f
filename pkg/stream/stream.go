package stream

import (
	"context"
	"sync"
)

// Subscriber receives values published to the Broadcaster it was created by.
// Values are read from the channel returned by C.
type Subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *Subscriber[T] {
	return &Subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

// C returns the receive channel. The channel is closed when the subscriber
// is closed, either explicitly or through broadcaster shutdown or context
// cancellation.
func (s *Subscriber[T]) C() <-chan T {
	return s.ch
}

// Close closes the subscriber and its receive channel. No more values will
// be delivered after Close. Close is idempotent and safe to call multiple
// times.
func (s *Subscriber[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *Subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Broadcaster fans values out to any number of subscribers. Publishing never
// blocks: a subscriber whose buffer is full simply misses the value, and the
// subscription stays alive. All methods are safe for concurrent use.
type Broadcaster[T any] struct {
	subscribers map[*Subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// New creates a broadcaster whose subscribers buffer up to bufferSize values.
// A minimum buffer size of 1 is enforced so that sends stay non-blocking.
func New[T any](bufferSize int) *Broadcaster[T] {
	return &Broadcaster[T]{
		subscribers: make(map[*Subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe creates a subscriber receiving every subsequently published
// value. The subscription is cleaned up when ctx is cancelled. If the
// broadcaster is already closed, the returned subscriber is already closed.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) *Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish delivers v to every active subscriber, skipping those whose
// buffers are full. Returns the number of subscribers that received v.
func (b *Broadcaster[T]) Publish(v T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return 0
	}

	delivered := 0
	for sub := range b.subscribers {
		if sub.send(v) {
			delivered++
		}
	}
	return delivered
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts down the broadcaster and closes every subscriber. After Close,
// Publish delivers nothing and Subscribe returns closed subscribers. Close
// is idempotent.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true

	for sub := range b.subscribers {
		sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Wait for context-cleanup goroutines so Close never races unsubscribe.
	b.cleanupWg.Wait()
}

func (b *Broadcaster[T]) unsubscribe(sub *Subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	sub.Close()
}
