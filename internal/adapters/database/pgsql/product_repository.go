package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	"github.com/subsadmin/subsadmin_backend/internal/models"
	"github.com/subsadmin/subsadmin_backend/internal/utils/mapping"
)

// PgxProductRepository implements the product repository using pgxpool.
type PgxProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new PgxProductRepository.
func NewProductRepository(db *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, vendor_id, category, base_price, base_currency_code,
	profit_margin_percent, bdt_price, fx_rate_applied, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID, &p.Name, &p.VendorID, &p.Category, &p.BasePrice, &p.BaseCurrencyCode,
		&p.ProfitMarginPercent, &p.BDTPrice, &p.FXRateApplied, &p.Status,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProductID, m.Name, m.VendorID, m.Category, m.BasePrice, m.BaseCurrencyCode,
		m.ProfitMarginPercent, m.BDTPrice, m.FXRateApplied, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, category = $3, base_price = $4, base_currency_code = $5,
			profit_margin_percent = $6, bdt_price = $7, fx_rate_applied = $8, status = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE product_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ProductID, m.Name, m.Category, m.BasePrice, m.BaseCurrencyCode,
		m.ProfitMarginPercent, m.BDTPrice, m.FXRateApplied, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, vendorID string, page, pageSize int) ([]domain.Product, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM products WHERE ($1 = '' OR vendor_id = $1);`
	if err := r.db.QueryRow(ctx, countQuery, vendorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR vendor_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan products: %w", err)
	}

	products := make([]domain.Product, len(modelRows))
	for i := range modelRows {
		products[i] = mapping.ToDomainProduct(modelRows[i])
	}
	return products, total, nil
}

// DeactivateProduct marks a product inactive without deleting it, so existing
// purchases keep a valid reference.
func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, productID, domain.ProductInactive, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
