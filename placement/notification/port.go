package notification

import (
	"context"

	"github.com/shaheed425/jobsy/pkg/kernel"
)

type Repository interface {
	// Create persists a new notification, assigning the next sequential
	// ID and stamping CreatedAt; IsRead starts false.
	Create(ctx context.Context, notification *Notification) error

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id kernel.NotificationID) (*Notification, error)

	// List retrieves all notifications
	List(ctx context.Context) ([]*Notification, error)

	// ListByRecipient retrieves notifications for a recipient class,
	// narrowed to one recipient when recipientID is non-zero
	ListByRecipient(ctx context.Context, recipient Recipient, recipientID int64) ([]*Notification, error)

	// MarkAsRead flips the read flag on a notification
	MarkAsRead(ctx context.Context, id kernel.NotificationID) (*Notification, error)
}
