package notificationsrv

import (
	"context"
	"sort"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/notification"
)

// NotificationService stores and serves in-app notifications
type NotificationService struct {
	notificationRepo notification.Repository
}

// NewNotificationService creates a new instance of the notification service
func NewNotificationService(notificationRepo notification.Repository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// CreateNotification validates and stores a notification
func (s *NotificationService) CreateNotification(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, errx.Wrap(err, "failed to create notification", errx.TypeInternal)
	}
	return n, nil
}

// ListAll retrieves every notification, newest first
func (s *NotificationService) ListAll(ctx context.Context) ([]*notification.Notification, error) {
	items, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list notifications", errx.TypeInternal)
	}
	sortByCreatedAtDesc(items)
	return items, nil
}

// ListForStudent returns a student's inbox: direct notifications plus
// the all-students broadcasts, newest first
func (s *NotificationService) ListForStudent(ctx context.Context, id kernel.StudentID) ([]*notification.Notification, error) {
	return s.listForRecipient(ctx, notification.RecipientStudent, notification.RecipientAllStudents, id.Int64())
}

// ListForEmployer returns an employer's inbox: direct notifications plus
// the all-employers broadcasts, newest first
func (s *NotificationService) ListForEmployer(ctx context.Context, id kernel.EmployerID) ([]*notification.Notification, error) {
	return s.listForRecipient(ctx, notification.RecipientEmployer, notification.RecipientAllEmployers, id.Int64())
}

// MarkAsRead flips the read flag on a notification
func (s *NotificationService) MarkAsRead(ctx context.Context, id kernel.NotificationID) (*notification.Notification, error) {
	n, err := s.notificationRepo.MarkAsRead(ctx, id)
	if err != nil {
		return nil, notification.ErrNotificationNotFound().WithDetail("notification_id", id.String())
	}
	return n, nil
}

// UnreadCountForStudent counts a student's unread notifications,
// broadcasts included
func (s *NotificationService) UnreadCountForStudent(ctx context.Context, id kernel.StudentID) (int, error) {
	items, err := s.ListForStudent(ctx, id)
	if err != nil {
		return 0, err
	}
	return countUnread(items), nil
}

// UnreadCountForEmployer counts an employer's unread notifications,
// broadcasts included
func (s *NotificationService) UnreadCountForEmployer(ctx context.Context, id kernel.EmployerID) (int, error) {
	items, err := s.ListForEmployer(ctx, id)
	if err != nil {
		return 0, err
	}
	return countUnread(items), nil
}

func (s *NotificationService) listForRecipient(ctx context.Context, direct, broadcast notification.Recipient, recipientID int64) ([]*notification.Notification, error) {
	items, err := s.notificationRepo.ListByRecipient(ctx, direct, recipientID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list notifications", errx.TypeInternal)
	}

	broadcasts, err := s.notificationRepo.ListByRecipient(ctx, broadcast, 0)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list broadcast notifications", errx.TypeInternal)
	}

	items = append(items, broadcasts...)
	sortByCreatedAtDesc(items)
	return items, nil
}

func countUnread(items []*notification.Notification) int {
	count := 0
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func sortByCreatedAtDesc(items []*notification.Notification) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].CreatedAt.After(items[b].CreatedAt)
	})
}
