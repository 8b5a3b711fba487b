package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Client       ClientSvcFacade
	Vendor       VendorSvcFacade
	Product      ProductSvcFacade
	Currency     CurrencySvcFacade
	Purchase     PurchaseSvcFacade
	Subscription SubscriptionSvcFacade
	Billing      BillingSvcFacade
	Invoice      InvoiceSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	User         UserSvcFacade
	Auth         AuthSvcFacade
	Notification NotificationSvcFacade
	Audit        AuditSvcFacade
}
