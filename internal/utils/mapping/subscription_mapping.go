package mapping

import (
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelSubscription converts a domain subscription to its persisted form.
func ToModelSubscription(s domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriptionID: s.SubscriptionID,
		PONumber:       s.PONumber,
		PurchaseID:     s.PurchaseID,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		ProductID:      s.ProductID,
		ProductName:    s.ProductName,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		TermMonths:     s.TermMonths,
		RecurringCount: s.RecurringCount,
		TotalAmount:    s.TotalAmount,
		Status:         string(s.Status),
		AuditFields:    ToModelAuditFields(s.AuditFields),
	}
}

// ToDomainSubscription converts a persisted subscription row to the domain form.
func ToDomainSubscription(s models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID: s.SubscriptionID,
		PONumber:       s.PONumber,
		PurchaseID:     s.PurchaseID,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		ProductID:      s.ProductID,
		ProductName:    s.ProductName,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		TermMonths:     s.TermMonths,
		RecurringCount: s.RecurringCount,
		TotalAmount:    s.TotalAmount,
		Status:         domain.SubscriptionStatus(s.Status),
		AuditFields:    ToDomainAuditFields(s.AuditFields),
	}
}
