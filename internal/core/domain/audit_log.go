package domain

import "time"

// AuditLog is one append-only record of an administrative action. Rows are
// never updated or deleted by normal operation.
type AuditLog struct {
	AuditLogID string    `json:"auditLogID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"` // e.g. "CREATE", "UPDATE", "DELETE"
	Module     string    `json:"module"` // e.g. "purchases", "billing"
	Details    string    `json:"details"`
	IPAddress  string    `json:"ipAddress"`
	URL        string    `json:"url"`
	UserAgent  string    `json:"userAgent"`
	Timestamp  time.Time `json:"timestamp"`
}
