package mvckit

import "github.com/google/uuid"

// Handle is an opaque identity token naming the owner of one or more
// observer bindings. Handles compare by value: two handles identify the same
// owner exactly when they came from the same NewHandle call. Removal paths
// match observers by owner handle, never by handler function.
type Handle struct {
	id string
}

// NewHandle allocates a fresh, unique owner identity.
func NewHandle() Handle {
	return Handle{id: uuid.New().String()}
}

// IsZero reports whether h is the zero handle, which names no owner
// allocated through NewHandle.
func (h Handle) IsZero() bool {
	return h.id == ""
}

// String returns the handle identity for log output.
func (h Handle) String() string {
	return h.id
}

// Observer binds a notification handler to its owner's handle. Observers
// are small values; they are copied freely into dispatch snapshots.
type Observer struct {
	notify func(*Notification)
	owner  Handle
}

// NewObserver creates an observer that invokes fn for every matching
// broadcast, owned by owner.
func NewObserver(fn func(*Notification), owner Handle) Observer {
	return Observer{notify: fn, owner: owner}
}

// Notify invokes the observer's handler with n. An observer constructed with
// a nil handler does nothing.
func (o Observer) Notify(n *Notification) {
	if o.notify != nil {
		o.notify(n)
	}
}

// OwnedBy reports whether the observer belongs to the given owner handle.
func (o Observer) OwnedBy(owner Handle) bool {
	return o.owner == owner
}
