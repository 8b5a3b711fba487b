package mapping

import (
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelPurchase converts a domain purchase to its persisted form.
func ToModelPurchase(p domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:         p.PurchaseID,
		PONumber:           p.PONumber,
		ClientID:           p.ClientID,
		ClientName:         p.ClientName,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		Quantity:           p.Quantity,
		Status:             string(p.Status),
		SubscriptionActive: p.SubscriptionActive,
		SubscriptionMonths: p.SubscriptionMonths,
		RecurringCount:     p.RecurringCount,
		DeliveryDate:       p.DeliveryDate,
		TotalAmount:        p.TotalAmount,
		FXRateApplied:      p.FXRateApplied,
		AttachmentRef:      p.AttachmentRef,
		AuditFields:        ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainPurchase converts a persisted purchase row to the domain form.
func ToDomainPurchase(p models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:         p.PurchaseID,
		PONumber:           p.PONumber,
		ClientID:           p.ClientID,
		ClientName:         p.ClientName,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		Quantity:           p.Quantity,
		Status:             domain.PurchaseStatus(p.Status),
		SubscriptionActive: p.SubscriptionActive,
		SubscriptionMonths: p.SubscriptionMonths,
		RecurringCount:     p.RecurringCount,
		DeliveryDate:       p.DeliveryDate,
		TotalAmount:        p.TotalAmount,
		FXRateApplied:      p.FXRateApplied,
		AttachmentRef:      p.AttachmentRef,
		AuditFields:        ToDomainAuditFields(p.AuditFields),
	}
}
