package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/utils/billing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Description: "Mail Hosting", Quantity: 3, UnitPrice: dec("250.00")},
		{Description: "Setup", Quantity: 1, UnitPrice: dec("99.995")},
	}

	totals, err := billing.ComputeTotals(lines, dec("50.00"), dec("25.00"))

	require.NoError(t, err)
	assert.True(t, totals.SubTotal.Equal(dec("850.00")), "got %s", totals.SubTotal)
	assert.True(t, totals.TotalAmount.Equal(dec("875.00")), "got %s", totals.TotalAmount)
}

func TestComputeTotalsRejectsNegatives(t *testing.T) {
	_, err := billing.ComputeTotals(nil, dec("-1"), decimal.Zero)
	assert.Error(t, err)

	_, err = billing.ComputeTotals(nil, decimal.Zero, dec("-1"))
	assert.Error(t, err)

	_, err = billing.ComputeTotals([]domain.InvoiceLine{{Quantity: 1, UnitPrice: dec("-5")}}, decimal.Zero, decimal.Zero)
	assert.Error(t, err)
}

func TestSumCountedPayments(t *testing.T) {
	payments := []domain.Payment{
		{Amount: dec("500.00"), Status: domain.PaymentCompleted},
		{Amount: dec("250.00"), Status: domain.PaymentFailed},
		{Amount: dec("100.00"), Status: domain.PaymentCompleted},
	}

	sum := billing.SumCountedPayments(payments)

	assert.True(t, sum.Equal(dec("600.00")), "failed payments must not count, got %s", sum)
}

func TestBalanceClampsAtZero(t *testing.T) {
	assert.True(t, billing.Balance(dec("100.00"), dec("40.00")).Equal(dec("60.00")))
	assert.True(t, billing.Balance(dec("100.00"), dec("120.00")).IsZero())
}

func TestOverpaidBeyondTolerance(t *testing.T) {
	tolerance := dec("0.01")

	assert.False(t, billing.OverpaidBeyondTolerance(dec("100.00"), dec("100.00"), tolerance))
	assert.False(t, billing.OverpaidBeyondTolerance(dec("100.00"), dec("100.01"), tolerance))
	assert.True(t, billing.OverpaidBeyondTolerance(dec("100.00"), dec("100.02"), tolerance))
}
