package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
)

// PgxClientRepository implements the client repository using pgxpool.
type PgxClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository creates a new PgxClientRepository.
func NewClientRepository(db *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{db: db}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, display_name, company, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		client.ClientID, client.DisplayName, client.Company, client.Email, client.Phone, client.Status,
		client.CreatedAt, client.CreatedBy, client.LastUpdatedAt, client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET display_name = $2, company = $3, email = $4, phone = $5, status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		client.ClientID, client.DisplayName, client.Company, client.Email, client.Phone, client.Status,
		client.LastUpdatedAt, client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, display_name, company, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	var client domain.Client
	err := r.db.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID, &client.DisplayName, &client.Company, &client.Email, &client.Phone, &client.Status,
		&client.CreatedAt, &client.CreatedBy, &client.LastUpdatedAt, &client.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, page, pageSize int) ([]domain.Client, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT client_id, display_name, company, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		var c domain.Client
		err := row.Scan(
			&c.ClientID, &c.DisplayName, &c.Company, &c.Email, &c.Phone, &c.Status,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		)
		return c, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan clients: %w", err)
	}
	return clients, total, nil
}

// DeleteClient removes a client. Deleting is refused while purchases, billing
// records or invoices still reference the client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	var dependents int
	query := `
		SELECT (SELECT COUNT(*) FROM purchases WHERE client_id = $1)
			+ (SELECT COUNT(*) FROM billing_records WHERE client_id = $1)
			+ (SELECT COUNT(*) FROM invoices WHERE client_id = $1);
	`
	if err := r.db.QueryRow(ctx, query, clientID).Scan(&dependents); err != nil {
		return fmt.Errorf("failed to count client dependents: %w", err)
	}
	if dependents > 0 {
		return apperrors.ErrConflict
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
