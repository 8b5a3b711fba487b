package dto

import (
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// AuditLogResponse defines the API representation of one audit record.
type AuditLogResponse struct {
	AuditLogID string    `json:"auditLogID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"`
	Module     string    `json:"module"`
	Details    string    `json:"details"`
	IPAddress  string    `json:"ipAddress"`
	URL        string    `json:"url"`
	UserAgent  string    `json:"userAgent"`
	Timestamp  time.Time `json:"timestamp"`
}

// AuditLogListResponse is a paginated list of audit records.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Pagination
}

// ToAuditLogResponse converts a domain.AuditLog to its API representation.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID: a.AuditLogID,
		UserID:     a.UserID,
		Action:     a.Action,
		Module:     a.Module,
		Details:    a.Details,
		IPAddress:  a.IPAddress,
		URL:        a.URL,
		UserAgent:  a.UserAgent,
		Timestamp:  a.Timestamp,
	}
}

// ToAuditLogListResponse converts a page of audit records.
func ToAuditLogListResponse(rows []domain.AuditLog, page, pageSize, total int) AuditLogListResponse {
	items := make([]AuditLogResponse, len(rows))
	for i := range rows {
		items[i] = ToAuditLogResponse(&rows[i])
	}
	return AuditLogListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
