package notificationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/notification"
)

// PostgresNotificationRepository implements notification.Repository using PostgreSQL
type PostgresNotificationRepository struct {
	db *sqlx.DB
}

// NewPostgresNotificationRepository creates a new PostgreSQL notification repository
func NewPostgresNotificationRepository(db *sqlx.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type notificationModel struct {
	ID                   int64     `db:"id"`
	Type                 string    `db:"type"`
	Title                string    `db:"title"`
	Message              string    `db:"message"`
	Recipient            string    `db:"recipient"`
	RecipientID          int64     `db:"recipient_id"`
	Priority             string    `db:"priority"`
	CreatedAt            time.Time `db:"created_at"`
	IsRead               bool      `db:"is_read"`
	RelatedJobID         *int64    `db:"related_job_id"`
	RelatedApplicationID *int64    `db:"related_application_id"`
}

// toEntity converts database model to domain entity
func (m *notificationModel) toEntity() *notification.Notification {
	var relatedJobID *kernel.JobID
	if m.RelatedJobID != nil {
		id := kernel.NewJobID(*m.RelatedJobID)
		relatedJobID = &id
	}

	var relatedApplicationID *kernel.ApplicationID
	if m.RelatedApplicationID != nil {
		id := kernel.NewApplicationID(*m.RelatedApplicationID)
		relatedApplicationID = &id
	}

	return &notification.Notification{
		ID:                   kernel.NewNotificationID(m.ID),
		Type:                 notification.NotificationType(m.Type),
		Title:                m.Title,
		Message:              m.Message,
		Recipient:            notification.Recipient(m.Recipient),
		RecipientID:          m.RecipientID,
		Priority:             notification.Priority(m.Priority),
		CreatedAt:            m.CreatedAt,
		IsRead:               m.IsRead,
		RelatedJobID:         relatedJobID,
		RelatedApplicationID: relatedApplicationID,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(n *notification.Notification) *notificationModel {
	var relatedJobID *int64
	if n.RelatedJobID != nil {
		id := n.RelatedJobID.Int64()
		relatedJobID = &id
	}

	var relatedApplicationID *int64
	if n.RelatedApplicationID != nil {
		id := n.RelatedApplicationID.Int64()
		relatedApplicationID = &id
	}

	return &notificationModel{
		ID:                   n.ID.Int64(),
		Type:                 string(n.Type),
		Title:                n.Title,
		Message:              n.Message,
		Recipient:            string(n.Recipient),
		RecipientID:          n.RecipientID,
		Priority:             string(n.Priority),
		CreatedAt:            n.CreatedAt,
		IsRead:               n.IsRead,
		RelatedJobID:         relatedJobID,
		RelatedApplicationID: relatedApplicationID,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new notification, assigning the next sequential ID
func (r *PostgresNotificationRepository) Create(ctx context.Context, notificationEntity *notification.Notification) error {
	notificationEntity.CreatedAt = time.Now()
	notificationEntity.IsRead = false

	model := fromEntity(notificationEntity)

	query := `
		INSERT INTO notifications (
			type, title, message, recipient, recipient_id,
			priority, created_at, is_read, related_job_id, related_application_id
		) VALUES (
			:type, :title, :message, :recipient, :recipient_id,
			:priority, :created_at, :is_read, :related_job_id, :related_application_id
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan notification id: %w", err)
		}
		notificationEntity.ID = kernel.NewNotificationID(id)
	}

	return nil
}

// GetByID retrieves a notification by ID
func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id kernel.NotificationID) (*notification.Notification, error) {
	query := `
		SELECT
			id, type, title, message, recipient, recipient_id,
			priority, created_at, is_read, related_job_id, related_application_id
		FROM notifications
		WHERE id = $1
	`

	var model notificationModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notification.ErrNotificationNotFound()
		}
		return nil, fmt.Errorf("failed to get notification by id: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves all notifications
func (r *PostgresNotificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	query := `
		SELECT
			id, type, title, message, recipient, recipient_id,
			priority, created_at, is_read, related_job_id, related_application_id
		FROM notifications
		ORDER BY id
	`

	return r.selectNotifications(ctx, query)
}

// ListByRecipient retrieves notifications for a recipient class,
// narrowed to one recipient when recipientID is non-zero
func (r *PostgresNotificationRepository) ListByRecipient(ctx context.Context, recipient notification.Recipient, recipientID int64) ([]*notification.Notification, error) {
	if recipientID == 0 {
		query := `
			SELECT
				id, type, title, message, recipient, recipient_id,
				priority, created_at, is_read, related_job_id, related_application_id
			FROM notifications
			WHERE recipient = $1
			ORDER BY id
		`
		return r.selectNotifications(ctx, query, string(recipient))
	}

	query := `
		SELECT
			id, type, title, message, recipient, recipient_id,
			priority, created_at, is_read, related_job_id, related_application_id
		FROM notifications
		WHERE recipient = $1 AND recipient_id = $2
		ORDER BY id
	`
	return r.selectNotifications(ctx, query, string(recipient), recipientID)
}

// MarkAsRead flips the read flag on a notification
func (r *PostgresNotificationRepository) MarkAsRead(ctx context.Context, id kernel.NotificationID) (*notification.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1
		RETURNING
			id, type, title, message, recipient, recipient_id,
			priority, created_at, is_read, related_job_id, related_application_id
	`

	var model notificationModel
	err := r.db.GetContext(ctx, &model, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notification.ErrNotificationNotFound()
		}
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresNotificationRepository) selectNotifications(ctx context.Context, query string, args ...interface{}) ([]*notification.Notification, error) {
	var models []notificationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities := make([]*notification.Notification, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}

	return entities, nil
}
