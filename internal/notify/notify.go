// Package notify holds the user-facing notification queue.
package notify

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// Center is an insertion-ordered notification queue with timed auto-expiry.
// IDs come from a monotonic counter, so two notifications created in the
// same instant still get distinct identities. Dismissing a notification
// early does not cancel its pending expiry timer; the late firing is benign
// because removal by id is idempotent.
type Center struct {
	mu     sync.Mutex
	items  []schema.Notification
	nextID atomic.Int64
	clock  contract.Clock
}

// NewCenter returns a Center scheduling expirations on the given clock.
// Pass contract.RealClock{} in production.
func NewCenter(clock contract.Clock) *Center {
	return &Center{clock: clock}
}

// Add appends a notification, assigns its id and schedules its removal.
// A non-positive timeout gets schema.DefaultNotificationTimeout. Returns
// the assigned id.
func (c *Center) Add(kind schema.NotificationKind, message string, timeout time.Duration) int64 {
	if timeout <= 0 {
		timeout = schema.DefaultNotificationTimeout
	}
	n := schema.Notification{
		ID:      c.nextID.Add(1),
		Kind:    kind,
		Message: message,
		Timeout: timeout,
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	id := n.ID
	c.clock.AfterFunc(n.Timeout, func() {
		c.Remove(id)
	})
	return id
}

// Remove deletes the notification with the given id. Removing an absent id
// is a no-op.
func (c *Center) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// List returns a copy of the queue in insertion order.
func (c *Center) List() []schema.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]schema.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of queued notifications.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
