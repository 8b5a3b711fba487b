package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// notificationService queues notifications and records delivery outcomes.
// Actual delivery happens outside this service.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, userRepo portsrepo.UserReader) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Enqueue queues a notification for delivery.
func (s *notificationService) Enqueue(ctx context.Context, req dto.EnqueueNotificationRequest, creatorUserID string) (*domain.Notification, error) {
	if _, err := s.userRepo.FindUserByID(ctx, req.RecipientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipient '%s' not found", apperrors.ErrValidation, req.RecipientID)
		}
		return nil, fmt.Errorf("failed to validate recipient '%s': %w", req.RecipientID, err)
	}

	now := time.Now()
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		RecipientID:    req.RecipientID,
		Channel:        req.Channel,
		Subject:        req.Subject,
		Body:           req.Body,
		Status:         domain.NotificationPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification")
		return nil, fmt.Errorf("failed to enqueue notification: %w", err)
	}

	s.LogInfo(ctx, "Notification enqueued", "notification_id", notification.NotificationID, "channel", string(notification.Channel))
	return &notification, nil
}

// MarkSent records a delivery outcome reported by the external sender.
func (s *notificationService) MarkSent(ctx context.Context, notificationID string, delivered bool) error {
	status := domain.NotificationSent
	if !delivered {
		status = domain.NotificationFailed
	}

	if err := s.notificationRepo.MarkNotificationStatus(ctx, notificationID, status, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark notification status", "notification_id", notificationID)
		return fmt.Errorf("failed to mark notification status: %w", err)
	}
	return nil
}

// ListNotifications retrieves a page of a recipient's notifications.
func (s *notificationService) ListNotifications(ctx context.Context, recipientID string, page, pageSize int) ([]domain.Notification, int, error) {
	rows, total, err := s.notificationRepo.ListNotifications(ctx, recipientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, total, nil
}
