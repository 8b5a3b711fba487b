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

// PgxPurchaseRepository implements the purchase repository using pgxpool.
type PgxPurchaseRepository struct {
	PgxTransactionManager
	db *pgxpool.Pool
}

// NewPurchaseRepository creates a new PgxPurchaseRepository.
func NewPurchaseRepository(db *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{PgxTransactionManager: PgxTransactionManager{pool: db}, db: db}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, po_number, client_id, client_name, product_id, product_name,
	quantity, status, subscription_active, subscription_months, recurring_count,
	delivery_date, total_amount, fx_rate_applied, attachment_ref,
	created_at, created_by, last_updated_at, last_updated_by`

const insertPurchaseQuery = `
	INSERT INTO purchases (` + purchaseColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var p models.Purchase
	err := row.Scan(
		&p.PurchaseID, &p.PONumber, &p.ClientID, &p.ClientName, &p.ProductID, &p.ProductName,
		&p.Quantity, &p.Status, &p.SubscriptionActive, &p.SubscriptionMonths, &p.RecurringCount,
		&p.DeliveryDate, &p.TotalAmount, &p.FXRateApplied, &p.AttachmentRef,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func purchaseInsertArgs(m models.Purchase) []any {
	return []any{
		m.PurchaseID, m.PONumber, m.ClientID, m.ClientName, m.ProductID, m.ProductName,
		m.Quantity, m.Status, m.SubscriptionActive, m.SubscriptionMonths, m.RecurringCount,
		m.DeliveryDate, m.TotalAmount, m.FXRateApplied, m.AttachmentRef,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	if _, err := r.db.Exec(ctx, insertPurchaseQuery, purchaseInsertArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, err)
	}
	return nil
}

// SavePurchaseWithSubscription persists a purchase and its derived
// subscription in a single database transaction. The unique constraint on
// subscriptions.purchase_id makes a second subscription for the same purchase
// impossible even under concurrent writers.
func (r *PgxPurchaseRepository) SavePurchaseWithSubscription(ctx context.Context, purchase domain.Purchase, subscription domain.Subscription) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	pm := mapping.ToModelPurchase(purchase)
	if _, err := tx.Exec(ctx, insertPurchaseQuery, purchaseInsertArgs(pm)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert purchase %s: %w", pm.PurchaseID, err)
	}

	sm := mapping.ToModelSubscription(subscription)
	subscriptionQuery := `
		INSERT INTO subscriptions (subscription_id, po_number, purchase_id, client_id, client_name,
			product_id, product_name, start_date, end_date, term_months, recurring_count,
			total_amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, subscriptionQuery,
		sm.SubscriptionID, sm.PONumber, sm.PurchaseID, sm.ClientID, sm.ClientName,
		sm.ProductID, sm.ProductName, sm.StartDate, sm.EndDate, sm.TermMonths, sm.RecurringCount,
		sm.TotalAmount, sm.Status, sm.CreatedAt, sm.CreatedBy, sm.LastUpdatedAt, sm.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert subscription for purchase %s: %w", pm.PurchaseID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit purchase %s with subscription: %w", pm.PurchaseID, err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`
	m, err := scanPurchase(r.db.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}
	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByPONumber(ctx context.Context, poNumber string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE po_number = $1;`
	m, err := scanPurchase(r.db.QueryRow(ctx, query, poNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by PO number %s: %w", poNumber, err)
	}
	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, clientID string, page, pageSize int) ([]domain.Purchase, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM purchases WHERE ($1 = '' OR client_id = $1);`
	if err := r.db.QueryRow(ctx, countQuery, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Purchase, error) {
		return scanPurchase(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan purchases: %w", err)
	}

	purchases := make([]domain.Purchase, len(modelRows))
	for i := range modelRows {
		purchases[i] = mapping.ToDomainPurchase(modelRows[i])
	}
	return purchases, total, nil
}

func (r *PgxPurchaseRepository) UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, userID string, now time.Time) error {
	query := `
		UPDATE purchases
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, purchaseID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update purchase status %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePurchase removes a purchase. Deleting is refused while a
// subscription, billing record or invoice still references the purchase.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	var dependents int
	query := `
		SELECT (SELECT COUNT(*) FROM subscriptions WHERE purchase_id = $1)
			+ (SELECT COUNT(*) FROM billing_records WHERE purchase_id = $1)
			+ (SELECT COUNT(*) FROM invoices WHERE purchase_id = $1);
	`
	if err := r.db.QueryRow(ctx, query, purchaseID).Scan(&dependents); err != nil {
		return fmt.Errorf("failed to count purchase dependents: %w", err)
	}
	if dependents > 0 {
		return apperrors.ErrConflict
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
