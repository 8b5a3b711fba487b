package domain

import "time"

// NotificationChannel is the delivery medium for a notification.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelInApp NotificationChannel = "INAPP"
)

// NotificationStatus tracks delivery state. Actual delivery happens outside
// this service; the dispatcher only records outcomes.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

// Notification is a templated message queued for a user.
type Notification struct {
	NotificationID string              `json:"notificationID"`
	RecipientID    string              `json:"recipientID"` // UserID reference
	Channel        NotificationChannel `json:"channel"`
	Subject        string              `json:"subject"`
	Body           string              `json:"body"`
	Status         NotificationStatus  `json:"status"`
	SentAt         *time.Time          `json:"sentAt,omitempty"`
	AuditFields
}
