package mvckit

import "fmt"

// Notification is the message envelope broadcast to observers. The envelope
// itself is immutable after construction; the body it carries travels by
// reference, so a mutable body is shared by every handler on a broadcast and
// across repeated broadcasts of the same instance.
type Notification struct {
	name string
	body any
	kind string
}

// NotificationOption configures a Notification during construction.
type NotificationOption func(*Notification)

// WithBody attaches a payload to the notification.
func WithBody(body any) NotificationOption {
	return func(n *Notification) {
		n.body = body
	}
}

// WithType tags the notification with a secondary discriminator, letting
// handlers that serve several notification names branch without inspecting
// the body.
func WithType(kind string) NotificationOption {
	return func(n *Notification) {
		n.kind = kind
	}
}

// NewNotification creates a notification carrying the given name. The body
// and type stay nil and empty unless set through options.
func NewNotification(name string, opts ...NotificationOption) *Notification {
	n := &Notification{name: name}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the notification name observers subscribe to.
func (n *Notification) Name() string {
	return n.name
}

// Body returns the payload attached to the notification, or nil when none
// was set.
func (n *Notification) Body() any {
	return n.body
}

// Type returns the secondary discriminator, or the empty string when none
// was set.
func (n *Notification) Type() string {
	return n.kind
}

// String renders the notification for log output. The body is included
// verbatim, so large bodies should implement fmt.Stringer themselves.
func (n *Notification) String() string {
	if n.kind == "" {
		return fmt.Sprintf("notification %q body=%v", n.name, n.body)
	}
	return fmt.Sprintf("notification %q type=%s body=%v", n.name, n.kind, n.body)
}
