package notificationinfra

import (
	"context"
	"sync"
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/notification"
)

// MemoryNotificationRepository implements notification.Repository in memory
type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[int64]*notification.Notification
	nextID        int64
}

// NewMemoryNotificationRepository creates a new in-memory notification repository
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		notifications: make(map[int64]*notification.Notification),
		nextID:        1,
	}
}

func (r *MemoryNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = kernel.NewNotificationID(r.nextID)
	n.CreatedAt = time.Now()
	n.IsRead = false
	r.nextID++

	stored := *n
	r.notifications[n.ID.Int64()] = &stored
	return nil
}

func (r *MemoryNotificationRepository) GetByID(ctx context.Context, id kernel.NotificationID) (*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notifications[id.Int64()]
	if !ok {
		return nil, notification.ErrNotificationNotFound()
	}

	out := *n
	return &out, nil
}

func (r *MemoryNotificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*notification.Notification) bool { return true }), nil
}

func (r *MemoryNotificationRepository) ListByRecipient(ctx context.Context, recipient notification.Recipient, recipientID int64) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(n *notification.Notification) bool {
		if n.Recipient != recipient {
			return false
		}
		return recipientID == 0 || n.RecipientID == recipientID
	}), nil
}

func (r *MemoryNotificationRepository) MarkAsRead(ctx context.Context, id kernel.NotificationID) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id.Int64()]
	if !ok {
		return nil, notification.ErrNotificationNotFound()
	}

	n.MarkRead()
	out := *n
	return &out, nil
}

// collect returns copies in insertion (ID) order; callers hold the lock
func (r *MemoryNotificationRepository) collect(match func(*notification.Notification) bool) []*notification.Notification {
	out := make([]*notification.Notification, 0)
	for id := int64(1); id < r.nextID; id++ {
		if n, ok := r.notifications[id]; ok && match(n) {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out
}
