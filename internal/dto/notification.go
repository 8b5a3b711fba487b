package dto

import (
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// EnqueueNotificationRequest defines the structure for queuing a notification.
type EnqueueNotificationRequest struct {
	RecipientID string                     `json:"recipientID" binding:"required"`
	Channel     domain.NotificationChannel `json:"channel" binding:"required,oneof=EMAIL SMS INAPP"`
	Subject     string                     `json:"subject" binding:"required"`
	Body        string                     `json:"body" binding:"required"`
}

// NotificationResponse defines the API representation of a notification.
type NotificationResponse struct {
	NotificationID string                     `json:"notificationID"`
	RecipientID    string                     `json:"recipientID"`
	Channel        domain.NotificationChannel `json:"channel"`
	Subject        string                     `json:"subject"`
	Body           string                     `json:"body"`
	Status         domain.NotificationStatus  `json:"status"`
	SentAt         *time.Time                 `json:"sentAt,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// NotificationListResponse is a paginated list of notifications.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Pagination
}

// ToNotificationResponse converts a domain.Notification to its API representation.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		RecipientID:    n.RecipientID,
		Channel:        n.Channel,
		Subject:        n.Subject,
		Body:           n.Body,
		Status:         n.Status,
		SentAt:         n.SentAt,
		CreatedAt:      n.CreatedAt,
	}
}

// ToNotificationListResponse converts a page of notifications.
func ToNotificationListResponse(rows []domain.Notification, page, pageSize, total int) NotificationListResponse {
	items := make([]NotificationResponse, len(rows))
	for i := range rows {
		items[i] = ToNotificationResponse(&rows[i])
	}
	return NotificationListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
