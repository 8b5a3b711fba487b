package mapping

import (
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelBillingRecord converts a domain billing record to its persisted form.
func ToModelBillingRecord(b domain.BillingRecord) models.BillingRecord {
	return models.BillingRecord{
		BillingID:      b.BillingID,
		BillNumber:     b.BillNumber,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		SubscriptionID: optionalRef(b.SubscriptionID),
		PurchaseID:     optionalRef(b.PurchaseID),
		PONumber:       b.PONumber,
		BillDate:       b.BillDate,
		DueDate:        b.DueDate,
		TotalAmount:    b.TotalAmount,
		PaidAmount:     b.PaidAmount,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		AuditFields:    ToModelAuditFields(b.AuditFields),
	}
}

// ToDomainBillingRecord converts a persisted billing row to the domain form.
func ToDomainBillingRecord(b models.BillingRecord) domain.BillingRecord {
	return domain.BillingRecord{
		BillingID:      b.BillingID,
		BillNumber:     b.BillNumber,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		SubscriptionID: derefOrEmpty(b.SubscriptionID),
		PurchaseID:     derefOrEmpty(b.PurchaseID),
		PONumber:       b.PONumber,
		BillDate:       b.BillDate,
		DueDate:        b.DueDate,
		TotalAmount:    b.TotalAmount,
		PaidAmount:     b.PaidAmount,
		Status:         domain.BillingStatus(b.Status),
		PaymentStatus:  domain.PaymentProgress(b.PaymentStatus),
		AuditFields:    ToDomainAuditFields(b.AuditFields),
	}
}

// ToModelPayment converts a domain payment to its persisted form.
func ToModelPayment(p domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     p.PaymentID,
		BillingID:     p.BillingID,
		PONumber:      p.PONumber,
		ClientID:      p.ClientID,
		Date:          p.Date,
		Amount:        p.Amount,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		AuditFields:   ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainPayment converts a persisted payment row to the domain form.
func ToDomainPayment(p models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     p.PaymentID,
		BillingID:     p.BillingID,
		PONumber:      p.PONumber,
		ClientID:      p.ClientID,
		Date:          p.Date,
		Amount:        p.Amount,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		Status:        domain.PaymentTxnStatus(p.Status),
		AuditFields:   ToDomainAuditFields(p.AuditFields),
	}
}

// optionalRef maps an empty domain reference to a NULL column value.
func optionalRef(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func derefOrEmpty(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
