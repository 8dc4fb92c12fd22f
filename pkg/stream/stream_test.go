package stream_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvckit/pkg/stream"
)

func TestBroadcaster_PublishAndReceive(t *testing.T) {
	t.Parallel()

	b := stream.New[string](4)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	defer sub.Close()

	delivered := b.Publish("hello")
	assert.Equal(t, 1, delivered)

	select {
	case v := <-sub.C():
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
}

func TestBroadcaster_MultipleSubscribers(t *testing.T) {
	t.Parallel()

	b := stream.New[int](4)
	defer b.Close()

	ctx := context.Background()
	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Publish(42))

	for _, sub := range []*stream.Subscriber[int]{first, second} {
		select {
		case v := <-sub.C():
			assert.Equal(t, 42, v)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for value")
		}
	}
}

func TestBroadcaster_FullBufferDropsValue(t *testing.T) {
	t.Parallel()

	b := stream.New[int](1)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	defer sub.Close()

	assert.Equal(t, 1, b.Publish(1))
	// Buffer is full now; the second value is dropped but the
	// subscription stays alive.
	assert.Equal(t, 0, b.Publish(2))
	assert.Equal(t, 1, b.Len())

	v := <-sub.C()
	assert.Equal(t, 1, v)

	assert.Equal(t, 1, b.Publish(3))
	v = <-sub.C()
	assert.Equal(t, 3, v)
}

func TestBroadcaster_ContextCancellation(t *testing.T) {
	t.Parallel()

	b := stream.New[int](4)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)

	cancel()

	// The receive channel closes once cleanup runs.
	select {
	case _, open := <-sub.C():
		assert.False(t, open, "channel should be closed after cancellation")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	assert.Eventually(t, func() bool {
		return b.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBroadcaster_Close(t *testing.T) {
	t.Parallel()

	t.Run("closes subscribers", func(t *testing.T) {
		t.Parallel()

		b := stream.New[int](4)
		sub := b.Subscribe(context.Background())

		b.Close()

		_, open := <-sub.C()
		assert.False(t, open)
		assert.Equal(t, 0, b.Publish(1))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		b := stream.New[int](4)
		b.Close()
		b.Close()
	})

	t.Run("subscribe after close", func(t *testing.T) {
		t.Parallel()

		b := stream.New[int](4)
		b.Close()

		sub := b.Subscribe(context.Background())
		_, open := <-sub.C()
		assert.False(t, open, "subscriber created after close must be closed")
	})
}

func TestSubscriber_CloseIdempotent(t *testing.T) {
	t.Parallel()

	b := stream.New[int](4)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	sub.Close()
	sub.Close()
}

func TestBroadcaster_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	b := stream.New[int](256)
	defer b.Close()

	sub := b.Subscribe(context.Background())

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(i)
		}()
	}
	wg.Wait()

	received := 0
	for {
		select {
		case _, open := <-sub.C():
			if !open {
				t.Fatal("channel closed unexpectedly")
			}
			received++
			if received == 100 {
				return
			}
		case <-time.After(time.Second):
			require.Equal(t, 100, received, "all published values should arrive")
			return
		}
	}
}
