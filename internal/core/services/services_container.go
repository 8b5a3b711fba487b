package services

import (
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.VendorRepo, repos.ExchangeRateRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)

	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.ClientRepo, repos.ProductRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo)
	container.Billing = NewBillingService(repos.BillingRepo, repos.SubscriptionRepo, repos.PurchaseRepo, cfg.OverpaymentTolerance)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PurchaseRepo, repos.ClientRepo, repos.BillingRepo, repos.SubscriptionRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo)
	container.Audit = NewAuditService(repos.AuditLogRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PurchaseSvcFacade     = (*purchaseService)(nil)
	_ portssvc.BillingSvcFacade      = (*billingService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*invoiceService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
)
