package events

import (
	"sync"
	"time"
)

// AuthorizationDenied is published when the API rejects a call with 403 or a
// dashboard blocks a tab switch. The session itself remains valid.
type AuthorizationDenied struct {
	Path       string
	Capability string
	At         time.Time
}

// SessionExpired is published when any API call returns 401. The session is
// invalid everywhere and the caller must re-authenticate.
type SessionExpired struct {
	Path string
	At   time.Time
}

// Subscription is a handle to an active subscription. Closing it removes the
// subscriber; closing twice is a no-op.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Close removes the subscription from the bus.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// Bus is a process-wide publish/subscribe channel for authorization events.
// Subscriber lifetime is explicit: each Subscribe call returns a handle that
// the owner closes when it goes away, so a stale subscriber can never outlive
// its owner and there is no last-write-wins slot.
type Bus struct {
	mu      sync.RWMutex
	nextID  int
	denied  map[int]func(AuthorizationDenied)
	expired map[int]func(SessionExpired)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		denied:  make(map[int]func(AuthorizationDenied)),
		expired: make(map[int]func(SessionExpired)),
	}
}

// SubscribeAuthorizationDenied registers fn for authorization-denied events.
func (b *Bus) SubscribeAuthorizationDenied(fn func(AuthorizationDenied)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.denied[id] = fn
	return &Subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.denied, id)
	}}
}

// SubscribeSessionExpired registers fn for session-expired events.
func (b *Bus) SubscribeSessionExpired(fn func(SessionExpired)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.expired[id] = fn
	return &Subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.expired, id)
	}}
}

// PublishAuthorizationDenied delivers the event to all current subscribers.
// Delivery is synchronous and in unspecified order; with no subscribers the
// publish is a no-op.
func (b *Bus) PublishAuthorizationDenied(event AuthorizationDenied) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	for _, fn := range b.deniedSubscribers() {
		fn(event)
	}
}

// PublishSessionExpired delivers the event to all current subscribers.
func (b *Bus) PublishSessionExpired(event SessionExpired) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	for _, fn := range b.expiredSubscribers() {
		fn(event)
	}
}

// deniedSubscribers snapshots subscribers so handlers can unsubscribe or
// resubscribe without holding the bus lock.
func (b *Bus) deniedSubscribers() []func(AuthorizationDenied) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := make([]func(AuthorizationDenied), 0, len(b.denied))
	for _, fn := range b.denied {
		subs = append(subs, fn)
	}
	return subs
}

func (b *Bus) expiredSubscribers() []func(SessionExpired) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := make([]func(SessionExpired), 0, len(b.expired))
	for _, fn := range b.expired {
		subs = append(subs, fn)
	}
	return subs
}
