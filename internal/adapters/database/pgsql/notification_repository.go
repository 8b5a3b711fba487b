package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
)

// PgxNotificationRepository implements the notification repository using pgxpool.
type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new PgxNotificationRepository.
func NewNotificationRepository(db *pgxpool.Pool) *PgxNotificationRepository {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, recipient_id, channel, subject, body, status, sent_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var n domain.Notification
	var channel, status string
	err := row.Scan(
		&n.NotificationID, &n.RecipientID, &channel, &n.Subject, &n.Body, &status, &n.SentAt,
		&n.CreatedAt, &n.CreatedBy, &n.LastUpdatedAt, &n.LastUpdatedBy,
	)
	n.Channel = domain.NotificationChannel(channel)
	n.Status = domain.NotificationStatus(status)
	return n, err
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		n.NotificationID, n.RecipientID, n.Channel, n.Subject, n.Body, n.Status, n.SentAt,
		n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationStatus(ctx context.Context, notificationID string, status domain.NotificationStatus, at time.Time) error {
	query := `
		UPDATE notifications
		SET status = $2, sent_at = $3, last_updated_at = $3
		WHERE notification_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, notificationID, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, recipientID string, page, pageSize int) ([]domain.Notification, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1;`, recipientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications for %s: %w", recipientID, err)
	}
	defer rows.Close()

	notifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		return scanNotification(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan notifications: %w", err)
	}
	return notifications, total, nil
}
