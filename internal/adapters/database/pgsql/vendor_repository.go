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

// PgxVendorRepository implements the vendor repository using pgxpool.
type PgxVendorRepository struct {
	db *pgxpool.Pool
}

// NewVendorRepository creates a new PgxVendorRepository.
func NewVendorRepository(db *pgxpool.Pool) *PgxVendorRepository {
	return &PgxVendorRepository{db: db}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_id, name, contact_person, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		vendor.VendorID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone, vendor.Status,
		vendor.CreatedAt, vendor.CreatedBy, vendor.LastUpdatedAt, vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, contact_person = $3, email = $4, phone = $5, status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE vendor_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		vendor.VendorID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone, vendor.Status,
		vendor.LastUpdatedAt, vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", vendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, contact_person, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		WHERE vendor_id = $1;
	`
	var vendor domain.Vendor
	err := r.db.QueryRow(ctx, query, vendorID).Scan(
		&vendor.VendorID, &vendor.Name, &vendor.ContactPerson, &vendor.Email, &vendor.Phone, &vendor.Status,
		&vendor.CreatedAt, &vendor.CreatedBy, &vendor.LastUpdatedAt, &vendor.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}
	return &vendor, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, page, pageSize int) ([]domain.Vendor, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendors;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT vendor_id, name, contact_person, email, phone, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vendor, error) {
		var v domain.Vendor
		err := row.Scan(
			&v.VendorID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone, &v.Status,
			&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy,
		)
		return v, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan vendors: %w", err)
	}
	return vendors, total, nil
}
