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
	"github.com/subsadmin/subsadmin_backend/internal/models"
	"github.com/subsadmin/subsadmin_backend/internal/utils/mapping"
)

// PgxSubscriptionRepository implements read access to subscription rows.
// Rows are written only through PgxPurchaseRepository, inside the same
// transaction as their owning purchase.
type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new PgxSubscriptionRepository.
func NewSubscriptionRepository(db *pgxpool.Pool) *PgxSubscriptionRepository {
	return &PgxSubscriptionRepository{db: db}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

const subscriptionColumns = `subscription_id, po_number, purchase_id, client_id, client_name,
	product_id, product_name, start_date, end_date, term_months, recurring_count,
	total_amount, status, created_at, created_by, last_updated_at, last_updated_by`

func scanSubscription(row pgx.Row) (models.Subscription, error) {
	var s models.Subscription
	err := row.Scan(
		&s.SubscriptionID, &s.PONumber, &s.PurchaseID, &s.ClientID, &s.ClientName,
		&s.ProductID, &s.ProductName, &s.StartDate, &s.EndDate, &s.TermMonths, &s.RecurringCount,
		&s.TotalAmount, &s.Status, &s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE subscription_id = $1;`
	m, err := scanSubscription(r.db.QueryRow(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription by ID %s: %w", subscriptionID, err)
	}
	subscription := mapping.ToDomainSubscription(m)
	return &subscription, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptionByPurchaseID(ctx context.Context, purchaseID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE purchase_id = $1;`
	m, err := scanSubscription(r.db.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription for purchase %s: %w", purchaseID, err)
	}
	subscription := mapping.ToDomainSubscription(m)
	return &subscription, nil
}

func (r *PgxSubscriptionRepository) ListSubscriptions(ctx context.Context, clientID string, page, pageSize int) ([]domain.Subscription, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM subscriptions WHERE ($1 = '' OR client_id = $1);`
	if err := r.db.QueryRow(ctx, countQuery, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Subscription, error) {
		return scanSubscription(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan subscriptions: %w", err)
	}

	subscriptions := make([]domain.Subscription, len(modelRows))
	for i := range modelRows {
		subscriptions[i] = mapping.ToDomainSubscription(modelRows[i])
	}
	return subscriptions, total, nil
}
