package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:       NewClientRepository(pool),
		VendorRepo:       NewVendorRepository(pool),
		ProductRepo:      NewProductRepository(pool),
		CurrencyRepo:     NewCurrencyRepository(pool),
		PurchaseRepo:     NewPurchaseRepository(pool),
		SubscriptionRepo: NewSubscriptionRepository(pool),
		BillingRepo:      NewBillingRepository(pool),
		InvoiceRepo:      NewInvoiceRepository(pool),
		ExchangeRateRepo: NewExchangeRateRepository(pool),
		UserRepo:         NewUserRepository(pool),
		AuditLogRepo:     NewAuditLogRepository(pool),
		NotificationRepo: NewNotificationRepository(pool),
	}
}
