// Package billing holds the pure monetary computations shared by the billing
// and invoice services. All amounts round to two decimal places, half-up.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// Totals is the result of computing an invoice or billing record's amounts.
type Totals struct {
	SubTotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ComputeTotals sums line items and applies tax and discount.
// sub_total = sum(unit_price * quantity); total = sub_total + tax - discount.
func ComputeTotals(lines []domain.InvoiceLine, taxAmount, discountAmount decimal.Decimal) (Totals, error) {
	if taxAmount.IsNegative() {
		return Totals{}, fmt.Errorf("tax amount must not be negative")
	}
	if discountAmount.IsNegative() {
		return Totals{}, fmt.Errorf("discount amount must not be negative")
	}

	subTotal := decimal.Zero
	for i, line := range lines {
		if line.Quantity < 0 {
			return Totals{}, fmt.Errorf("line %d: quantity must not be negative", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return Totals{}, fmt.Errorf("line %d: unit price must not be negative", i+1)
		}
		subTotal = subTotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}
	subTotal = subTotal.Round(2)

	return Totals{
		SubTotal:       subTotal,
		TaxAmount:      taxAmount.Round(2),
		DiscountAmount: discountAmount.Round(2),
		TotalAmount:    subTotal.Add(taxAmount).Sub(discountAmount).Round(2),
	}, nil
}

// LineTotal computes one line's extended amount, rounded.
func LineTotal(unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity)).Round(2)
}

// SumCountedPayments sums the amounts of payments that count toward a billing
// record's paid amount. PENDING, FAILED and CANCELLED payments contribute
// nothing.
func SumCountedPayments(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Counted() {
			sum = sum.Add(p.Amount)
		}
	}
	return sum.Round(2)
}

// Balance returns total minus paid, clamped at zero.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	balance := total.Sub(paid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance.Round(2)
}

// OverpaidBeyondTolerance reports whether paid exceeds total by more than the
// allowed tolerance. Overpayment is not blocked, only surfaced for logging.
func OverpaidBeyondTolerance(total, paid, tolerance decimal.Decimal) bool {
	return paid.Sub(total).GreaterThan(tolerance)
}
