package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

func TestPaymentProgressFor(t *testing.T) {
	total := decimal.RequireFromString("1000.00")

	assert.Equal(t, domain.Unpaid, domain.PaymentProgressFor(decimal.Zero, total))
	assert.Equal(t, domain.PartiallyPaid, domain.PaymentProgressFor(decimal.RequireFromString("500.00"), total))
	assert.Equal(t, domain.Paid, domain.PaymentProgressFor(total, total))
	assert.Equal(t, domain.Paid, domain.PaymentProgressFor(decimal.RequireFromString("1200.00"), total), "overpayment still reads as paid")
	assert.Equal(t, domain.Unpaid, domain.PaymentProgressFor(decimal.Zero, decimal.Zero), "a zero total is never paid")
}

func TestBillingRecordStatusAt(t *testing.T) {
	due := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	record := domain.BillingRecord{
		TotalAmount: decimal.RequireFromString("1000.00"),
		PaidAmount:  decimal.Zero,
		DueDate:     due,
	}

	assert.Equal(t, domain.BillingPending, record.StatusAt(due.Add(-24*time.Hour)))
	assert.Equal(t, domain.BillingOverdue, record.StatusAt(due.Add(24*time.Hour)))

	record.PaidAmount = record.TotalAmount
	assert.Equal(t, domain.BillingPaid, record.StatusAt(due.Add(24*time.Hour)), "settled records never read as overdue")
}

func TestBillingRecordBalanceAmount(t *testing.T) {
	record := domain.BillingRecord{
		TotalAmount: decimal.RequireFromString("1000.00"),
		PaidAmount:  decimal.RequireFromString("400.00"),
	}
	assert.True(t, record.BalanceAmount().Equal(decimal.RequireFromString("600.00")))

	record.PaidAmount = decimal.RequireFromString("1100.00")
	assert.True(t, record.BalanceAmount().IsZero(), "overpayment never yields a negative balance")
}
