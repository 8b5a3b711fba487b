package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
)

// PgxAuditLogRepository implements the append-only audit log repository.
// There are deliberately no update or delete statements in this file.
type PgxAuditLogRepository struct {
	db *pgxpool.Pool
}

// NewAuditLogRepository creates a new PgxAuditLogRepository.
func NewAuditLogRepository(db *pgxpool.Pool) *PgxAuditLogRepository {
	return &PgxAuditLogRepository{db: db}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_log_id, user_id, action, module, details,
			ip_address, url, user_agent, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		entry.AuditLogID, entry.UserID, entry.Action, entry.Module, entry.Details,
		entry.IPAddress, entry.URL, entry.UserAgent, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, module string, page, pageSize int) ([]domain.AuditLog, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM audit_logs WHERE ($1 = '' OR module = $1);`
	if err := r.db.QueryRow(ctx, countQuery, module).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT audit_log_id, user_id, action, module, details, ip_address, url, user_agent, timestamp
		FROM audit_logs
		WHERE ($1 = '' OR module = $1)
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, module, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditLog, error) {
		var e domain.AuditLog
		err := row.Scan(
			&e.AuditLogID, &e.UserID, &e.Action, &e.Module, &e.Details,
			&e.IPAddress, &e.URL, &e.UserAgent, &e.Timestamp,
		)
		return e, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan audit logs: %w", err)
	}
	return entries, total, nil
}
