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

// PgxInvoiceRepository implements the invoice repository using pgxpool.
type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository creates a new PgxInvoiceRepository.
func NewInvoiceRepository(db *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, purchase_id, billing_id, subscription_id,
	client_id, client_name, client_email, issue_date, due_date, sub_total, tax_amount,
	discount_amount, total_amount, paid_amount, balance_amount, status, items,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.InvoiceID, &inv.InvoiceNumber, &inv.PurchaseID, &inv.BillingID, &inv.SubscriptionID,
		&inv.ClientID, &inv.ClientName, &inv.ClientEmail, &inv.IssueDate, &inv.DueDate, &inv.SubTotal, &inv.TaxAmount,
		&inv.DiscountAmount, &inv.TotalAmount, &inv.PaidAmount, &inv.BalanceAmount, &inv.Status, &inv.Items,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	return inv, err
}

// SaveInvoice persists a new invoice. The unique constraint on purchase_id
// surfaces as ErrDuplicate, making invoice generation idempotent per purchase.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = r.db.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.PurchaseID, m.BillingID, m.SubscriptionID,
		m.ClientID, m.ClientName, m.ClientEmail, m.IssueDate, m.DueDate, m.SubTotal, m.TaxAmount,
		m.DiscountAmount, m.TotalAmount, m.PaidAmount, m.BalanceAmount, m.Status, m.Items,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	invoice, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByPurchaseID(ctx context.Context, purchaseID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE purchase_id = $1;`
	m, err := scanInvoice(r.db.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice for purchase %s: %w", purchaseID, err)
	}
	invoice, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, clientID string, page, pageSize int) ([]domain.Invoice, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM invoices WHERE ($1 = '' OR client_id = $1);`
	if err := r.db.QueryRow(ctx, countQuery, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan invoices: %w", err)
	}

	invoices := make([]domain.Invoice, len(modelRows))
	for i := range modelRows {
		invoices[i], err = mapping.ToDomainInvoice(modelRows[i])
		if err != nil {
			return nil, 0, err
		}
	}
	return invoices, total, nil
}
