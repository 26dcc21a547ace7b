// Package notify carries the transient success/error message surfaced to the
// user after a mutation. A message replaces the previous one and dismisses
// itself after a fixed delay, matching the 5 second toast of the admin screens.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one transient message.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// DefaultDismissAfter is how long a message stays up when no other delay is
// configured.
const DefaultDismissAfter = 5 * time.Second

// Notifier holds at most one current notification.
type Notifier struct {
	mu           sync.Mutex
	current      *Notification
	timer        *time.Timer
	dismissAfter time.Duration
	listeners    map[int]func(Notification)
	nextSub      int
}

// NewNotifier creates a notifier that auto-dismisses after dismissAfter.
// A non-positive duration falls back to DefaultDismissAfter.
func NewNotifier(dismissAfter time.Duration) *Notifier {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Notifier{
		dismissAfter: dismissAfter,
		listeners:    make(map[int]func(Notification)),
	}
}

// Success shows a success message.
func (n *Notifier) Success(message string) {
	n.show(Notification{Kind: KindSuccess, Message: message})
}

// Error shows an error message.
func (n *Notifier) Error(message string) {
	n.show(Notification{Kind: KindError, Message: message})
}

func (n *Notifier) show(notification Notification) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &notification
	n.timer = time.AfterFunc(n.dismissAfter, n.Dismiss)
	fns := make([]func(Notification), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(notification)
	}
}

// Dismiss clears the current message, if any.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

// Current returns the message currently shown, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	current := *n.current
	return &current
}

// Subscribe registers fn to run for every shown message and returns a function
// that removes the subscription.
func (n *Notifier) Subscribe(fn func(Notification)) func() {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.listeners[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}
