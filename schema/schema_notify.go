package schema

import "time"

// DefaultNotificationTimeout is the auto-dismiss delay applied when a
// notification is added with a zero timeout.
const DefaultNotificationTimeout = 5 * time.Second

// Notification is one entry of the user-facing notification queue. IDs come
// from a monotonic counter, so two notifications created in the same
// millisecond still get distinct identities.
type Notification struct {
	ID      int64            `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	Timeout time.Duration    `json:"timeout"` // Auto-dismiss delay
}
