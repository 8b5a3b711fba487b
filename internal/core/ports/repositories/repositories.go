package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo       ClientRepositoryFacade
	VendorRepo       VendorRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	CurrencyRepo     CurrencyRepositoryFacade
	PurchaseRepo     PurchaseRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	BillingRepo      BillingRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	UserRepo         UserRepositoryFacade
	AuditLogRepo     AuditLogRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
