package repositories

import (
	"context"
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// AuditLogRepositoryFacade defines persistence for the append-only audit log.
// There are deliberately no update or delete operations.
type AuditLogRepositoryFacade interface {
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, module string, page, pageSize int) ([]domain.AuditLog, int, error)
}

// NotificationRepositoryFacade defines persistence operations for notifications.
type NotificationRepositoryFacade interface {
	SaveNotification(ctx context.Context, n domain.Notification) error
	MarkNotificationStatus(ctx context.Context, notificationID string, status domain.NotificationStatus, at time.Time) error
	ListNotifications(ctx context.Context, recipientID string, page, pageSize int) ([]domain.Notification, int, error)
}
