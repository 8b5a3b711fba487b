package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// AuditSvcFacade defines the append-only audit log operations.
type AuditSvcFacade interface {
	// Record appends one audit entry. Failures are logged by callers, never
	// propagated into the request that triggered them.
	Record(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs retrieves a page of audit entries, optionally per module.
	ListAuditLogs(ctx context.Context, module string, page, pageSize int) ([]domain.AuditLog, int, error)
}

// NotificationSvcFacade defines the notification dispatcher operations.
type NotificationSvcFacade interface {
	// Enqueue queues a notification for delivery.
	Enqueue(ctx context.Context, req dto.EnqueueNotificationRequest, creatorUserID string) (*domain.Notification, error)

	// MarkSent records a delivery outcome reported by the external sender.
	MarkSent(ctx context.Context, notificationID string, delivered bool) error

	// ListNotifications retrieves a page of a recipient's notifications.
	ListNotifications(ctx context.Context, recipientID string, page, pageSize int) ([]domain.Notification, int, error)
}
