package mvckit

import (
	"context"

	"github.com/dmitrymomot/mvckit/pkg/logger"
	"github.com/dmitrymomot/mvckit/pkg/stream"
)

// DefaultStreamBuffer is the per-consumer channel capacity used by Stream
// when the app was built without WithStreamBuffer.
const DefaultStreamBuffer = 64

// Stream bridges broadcasts of the given notification names onto a receive
// channel, for consumers that live on their own goroutines (render loops,
// recorders, audit trails). The bridge registers one ordinary observer per
// name, so streaming never changes dispatch semantics: delivery into the
// channel happens synchronously, in registration order relative to other
// observers.
//
// A consumer that falls more than the stream buffer behind misses the
// overflowing notifications instead of blocking dispatch. The observers are
// removed and the channel closed when ctx is cancelled; with a
// non-cancellable ctx the bridge stays attached for the app's lifetime.
func (a *App) Stream(ctx context.Context, names ...string) <-chan *Notification {
	b := stream.New[*Notification](a.streamBuffer)
	if a.view == nil || len(names) == 0 {
		// Nothing to bridge; hand back an already-closed channel.
		b.Close()
		return b.Subscribe(ctx).C()
	}
	sub := b.Subscribe(ctx)

	h := NewHandle()
	o := NewObserver(func(n *Notification) {
		if b.Publish(n) == 0 {
			a.log.Debug("stream consumer missed a notification",
				logger.Component("stream"),
				logger.Notification(n.Name()))
		}
	}, h)
	for _, name := range names {
		a.view.RegisterObserver(name, o)
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			for _, name := range names {
				if err := a.view.RemoveObserver(name, h); err != nil {
					a.log.Debug("stream observer already removed",
						logger.Component("stream"),
						logger.Notification(name))
				}
			}
			b.Close()
		}()
	}

	return sub.C()
}
