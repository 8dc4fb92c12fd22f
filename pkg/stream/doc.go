// Package stream provides a minimal in-process value broadcaster for
// bridging synchronous code to channel consumers.
//
// A Broadcaster fans published values out to all current subscribers without
// ever blocking the publisher: each subscriber owns a buffered channel, and a
// full buffer means the subscriber misses that value. This makes Publish safe
// to call from latency-sensitive paths such as a dispatch loop.
//
// Basic usage:
//
//	b := stream.New[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//		for v := range sub.C() {
//			fmt.Println(v)
//		}
//	}()
//
//	b.Publish("hello")
//
// Subscriptions are cleaned up when their context is cancelled, when the
// subscriber is closed, or when the broadcaster shuts down.
package stream
