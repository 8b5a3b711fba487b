package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	"github.com/subsadmin/subsadmin_backend/internal/models"
	"github.com/subsadmin/subsadmin_backend/internal/utils/mapping"
)

// PgxBillingRepository implements the billing repository using pgxpool.
type PgxBillingRepository struct {
	PgxTransactionManager
	db *pgxpool.Pool
}

// NewBillingRepository creates a new PgxBillingRepository.
func NewBillingRepository(db *pgxpool.Pool) *PgxBillingRepository {
	return &PgxBillingRepository{PgxTransactionManager: PgxTransactionManager{pool: db}, db: db}
}

var _ portsrepo.BillingRepositoryFacade = (*PgxBillingRepository)(nil)

const billingColumns = `billing_id, bill_number, client_id, client_name, subscription_id, purchase_id,
	po_number, bill_date, due_date, total_amount, paid_amount, status, payment_status,
	created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, billing_id, po_number, client_id, date, amount, method,
	transaction_id, status, created_at, created_by, last_updated_at, last_updated_by`

func scanBilling(row pgx.Row) (models.BillingRecord, error) {
	var b models.BillingRecord
	err := row.Scan(
		&b.BillingID, &b.BillNumber, &b.ClientID, &b.ClientName, &b.SubscriptionID, &b.PurchaseID,
		&b.PONumber, &b.BillDate, &b.DueDate, &b.TotalAmount, &b.PaidAmount, &b.Status, &b.PaymentStatus,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	return b, err
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.PaymentID, &p.BillingID, &p.PONumber, &p.ClientID, &p.Date, &p.Amount, &p.Method,
		&p.TransactionID, &p.Status, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxBillingRepository) SaveBilling(ctx context.Context, billing domain.BillingRecord) error {
	m := mapping.ToModelBillingRecord(billing)
	query := `
		INSERT INTO billing_records (` + billingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		m.BillingID, m.BillNumber, m.ClientID, m.ClientName, m.SubscriptionID, m.PurchaseID,
		m.PONumber, m.BillDate, m.DueDate, m.TotalAmount, m.PaidAmount, m.Status, m.PaymentStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save billing record %s: %w", m.BillingID, err)
	}
	return nil
}

// SavePaymentAndRecompute inserts a payment and recomputes the referenced
// billing record's paid_amount and payment_status from the full set of
// COMPLETED payments, all inside one transaction with the billing row locked.
func (r *PgxBillingRepository) SavePaymentAndRecompute(ctx context.Context, payment domain.Payment) (*domain.BillingRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	// Lock the billing row so concurrent payments serialize on the recompute.
	lockQuery := `SELECT ` + billingColumns + ` FROM billing_records WHERE billing_id = $1 FOR UPDATE;`
	bm, err := scanBilling(tx.QueryRow(ctx, lockQuery, payment.BillingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock billing record %s: %w", payment.BillingID, err)
	}

	pm := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		pm.PaymentID, pm.BillingID, pm.PONumber, pm.ClientID, pm.Date, pm.Amount, pm.Method,
		pm.TransactionID, pm.Status, pm.CreatedAt, pm.CreatedBy, pm.LastUpdatedAt, pm.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert payment %s: %w", pm.PaymentID, err)
	}

	// Recompute from the full payment set rather than incrementing, so the
	// stored amount always matches what the payments table says.
	var paid decimal.Decimal
	sumQuery := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE billing_id = $1 AND status = $2;
	`
	if err := tx.QueryRow(ctx, sumQuery, payment.BillingID, string(domain.PaymentCompleted)).Scan(&paid); err != nil {
		return nil, fmt.Errorf("failed to sum payments for billing record %s: %w", payment.BillingID, err)
	}

	paid = paid.Round(2)
	paymentStatus := domain.PaymentProgressFor(paid, bm.TotalAmount)
	storedStatus := domain.BillingPending
	if paymentStatus == domain.Paid {
		storedStatus = domain.BillingPaid
	}

	now := time.Now()
	updateQuery := `
		UPDATE billing_records
		SET paid_amount = $2, payment_status = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE billing_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		payment.BillingID, paid, string(paymentStatus), string(storedStatus), now, payment.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update billing record %s: %w", payment.BillingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment %s: %w", pm.PaymentID, err)
	}

	bm.PaidAmount = paid
	bm.PaymentStatus = string(paymentStatus)
	bm.Status = string(storedStatus)
	bm.LastUpdatedAt = now
	bm.LastUpdatedBy = payment.CreatedBy
	updated := mapping.ToDomainBillingRecord(bm)
	return &updated, nil
}

func (r *PgxBillingRepository) FindBillingByID(ctx context.Context, billingID string) (*domain.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing_records WHERE billing_id = $1;`
	m, err := scanBilling(r.db.QueryRow(ctx, query, billingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing record by ID %s: %w", billingID, err)
	}
	billing := mapping.ToDomainBillingRecord(m)
	return &billing, nil
}

func (r *PgxBillingRepository) FindBillingByPurchaseID(ctx context.Context, purchaseID string) (*domain.BillingRecord, error) {
	query := `
		SELECT ` + billingColumns + `
		FROM billing_records
		WHERE purchase_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanBilling(r.db.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing record for purchase %s: %w", purchaseID, err)
	}
	billing := mapping.ToDomainBillingRecord(m)
	return &billing, nil
}

func (r *PgxBillingRepository) ListBillings(ctx context.Context, clientID string, page, pageSize int) ([]domain.BillingRecord, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM billing_records WHERE ($1 = '' OR client_id = $1);`
	if err := r.db.QueryRow(ctx, countQuery, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count billing records: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + billingColumns + `
		FROM billing_records
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list billing records: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BillingRecord, error) {
		return scanBilling(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan billing records: %w", err)
	}

	billings := make([]domain.BillingRecord, len(modelRows))
	for i := range modelRows {
		billings[i] = mapping.ToDomainBillingRecord(modelRows[i])
	}
	return billings, total, nil
}

func (r *PgxBillingRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *PgxBillingRepository) ListPaymentsByBilling(ctx context.Context, billingID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE billing_id = $1
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, billingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for billing record %s: %w", billingID, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	payments := make([]domain.Payment, len(modelRows))
	for i := range modelRows {
		payments[i] = mapping.ToDomainPayment(modelRows[i])
	}
	return payments, nil
}

func (r *PgxBillingRepository) ListPaymentsByClient(ctx context.Context, clientID string, page, pageSize int) ([]domain.Payment, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE client_id = $1;`, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE client_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments for client %s: %w", clientID, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan payments: %w", err)
	}

	payments := make([]domain.Payment, len(modelRows))
	for i := range modelRows {
		payments[i] = mapping.ToDomainPayment(modelRows[i])
	}
	return payments, total, nil
}
