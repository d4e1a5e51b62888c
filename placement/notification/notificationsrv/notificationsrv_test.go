package notificationsrv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
)

func newService() (*NotificationService, *notificationinfra.MemoryNotificationRepository) {
	repo := notificationinfra.NewMemoryNotificationRepository()
	return NewNotificationService(repo), repo
}

func TestCreateNotification_RejectsUnknownType(t *testing.T) {
	svc, _ := newService()

	_, err := svc.CreateNotification(context.Background(), &notification.Notification{
		Type:      "carrier_pigeon",
		Title:     "Hello",
		Message:   "World",
		Recipient: notification.RecipientStudent,
		Priority:  notification.PriorityLow,
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
	assert.Contains(t, err.Error(), "Invalid notification type")
}

func TestListForStudent_MergesDirectAndBroadcasts(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	studentID := kernel.NewStudentID(1)
	otherID := kernel.NewStudentID(2)

	require.NoError(t, repo.Create(ctx, notification.NewProfileCreated(studentID)))
	require.NoError(t, repo.Create(ctx, notification.NewProfileCreated(otherID)))
	require.NoError(t, repo.Create(ctx, notification.NewJobPosting(kernel.NewJobID(1), "Backend Engineer", "Acme Corp")))

	inbox, err := svc.ListForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, inbox, 2) // own welcome + broadcast, not the other student's

	types := []notification.NotificationType{inbox[0].Type, inbox[1].Type}
	assert.Contains(t, types, notification.TypeProfileCreated)
	assert.Contains(t, types, notification.TypeJobPosting)
}

func TestListForEmployer_DoesNotSeeStudentBroadcasts(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	employerID := kernel.NewEmployerID(1)
	require.NoError(t, repo.Create(ctx, notification.NewCompanyRegistration(employerID)))
	require.NoError(t, repo.Create(ctx, notification.NewJobPosting(kernel.NewJobID(1), "Backend Engineer", "Acme Corp")))

	inbox, err := svc.ListForEmployer(ctx, employerID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, notification.TypeCompanyRegistration, inbox[0].Type)
}

func TestUnreadCount_DropsAfterMarkAsRead(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	studentID := kernel.NewStudentID(1)
	welcome := notification.NewProfileCreated(studentID)
	require.NoError(t, repo.Create(ctx, welcome))
	require.NoError(t, repo.Create(ctx, notification.NewJobPosting(kernel.NewJobID(1), "Backend Engineer", "Acme Corp")))

	count, err := svc.UnreadCountForStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	read, err := svc.MarkAsRead(ctx, welcome.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	count, err = svc.UnreadCountForStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkAsRead_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.MarkAsRead(context.Background(), kernel.NewNotificationID(99))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
