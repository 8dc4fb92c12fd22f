// Package registry provides a generic, thread-safe registry of values keyed
// by name.
//
// A Registry is the storage primitive behind the framework's named maps
// (proxies, mediators, command factories): it offers plain register, retrieve
// and remove semantics with no eviction, ordering, or lifecycle behavior of
// its own. Callers that need registration hooks run them around the registry
// operations.
//
// # Usage
//
//	reg := registry.New[*Session]()
//
//	reg.Put("alice", session)
//
//	if s, ok := reg.Get("alice"); ok {
//		// use s
//	}
//
//	removed, existed := reg.Remove("alice")
//
// PutIfAbsent supports first-registration-wins semantics:
//
//	if !reg.PutIfAbsent("alice", session) {
//		// "alice" was already taken, the original entry is untouched
//	}
//
// All operations are safe for concurrent use.
package registry
