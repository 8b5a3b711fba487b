package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
)

// auditService appends to and reads the append-only audit log.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// Record appends one audit entry. An audit write failure must never fail the
// request that triggered it, so callers log the returned error and move on.
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) error {
	if entry.AuditLogID == "" {
		entry.AuditLogID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := s.auditRepo.AppendAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit log", "module", entry.Module, "action", entry.Action)
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

// ListAuditLogs retrieves a page of audit entries, optionally per module.
func (s *auditService) ListAuditLogs(ctx context.Context, module string, page, pageSize int) ([]domain.AuditLog, int, error) {
	rows, total, err := s.auditRepo.ListAuditLogs(ctx, module, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return rows, total, nil
}
