package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/utils/dates"
)

// SubscriptionStatus classifies a subscription relative to its term dates.
type SubscriptionStatus string

const (
	SubscriptionPending      SubscriptionStatus = "PENDING"
	SubscriptionActive       SubscriptionStatus = "ACTIVE"
	SubscriptionExpiringSoon SubscriptionStatus = "EXPIRING_SOON"
	SubscriptionExpired      SubscriptionStatus = "EXPIRED"
)

// ExpiringSoonWindow is how close to the end date a subscription is reported
// as expiring soon.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Subscription is the derived child of a subscription-enabled purchase.
// Exactly one exists per such purchase; the storage layer enforces the
// uniqueness. Name fields are write-time projections, same as on Purchase.
type Subscription struct {
	SubscriptionID string             `json:"subscriptionID"`
	PONumber       string             `json:"poNumber"`
	PurchaseID     string             `json:"purchaseID"`
	ClientID       string             `json:"clientID"`
	ClientName     string             `json:"clientName"`
	ProductID      string             `json:"productID"`
	ProductName    string             `json:"productName"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"` // StartDate + TermMonths calendar months
	TermMonths     int                `json:"termMonths"`
	RecurringCount int                `json:"recurringCount"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	Status         SubscriptionStatus `json:"status"` // status as stored at creation
	AuditFields
}

// StatusAt computes the display status of the subscription as a pure function
// of its dates and the supplied clock. Callers must never cache the result
// across reads. Precedence: expired, expiring soon, active, pending.
func (s Subscription) StatusAt(now time.Time) SubscriptionStatus {
	switch {
	case s.EndDate.Before(now):
		return SubscriptionExpired
	case s.EndDate.Sub(now) <= ExpiringSoonWindow:
		return SubscriptionExpiringSoon
	case !s.StartDate.After(now):
		return SubscriptionActive
	default:
		return SubscriptionPending
	}
}

// NextBillingDate returns the next date a billing record is expected for this
// subscription. A single-term subscription bills at its end date. A recurring
// subscription bills at the start of each cycle; the result is the start of
// the first cycle after now, capped at the end of the schedule once every
// cycle has begun.
func (s Subscription) NextBillingDate(now time.Time) time.Time {
	if s.RecurringCount <= 1 {
		return s.EndDate
	}
	for k := 1; k < s.RecurringCount; k++ {
		periodStart := dates.AddMonths(s.StartDate, k*s.TermMonths)
		if periodStart.After(now) {
			return periodStart
		}
	}
	return dates.AddMonths(s.StartDate, s.RecurringCount*s.TermMonths)
}

// ProgressPercent reports elapsed term duration as a percentage in [0, 100],
// rounded to two decimal places.
func (s Subscription) ProgressPercent(now time.Time) decimal.Decimal {
	total := s.EndDate.Sub(s.StartDate)
	if total <= 0 {
		return decimal.NewFromInt(100)
	}
	elapsed := now.Sub(s.StartDate)
	if elapsed <= 0 {
		return decimal.Zero
	}
	if elapsed >= total {
		return decimal.NewFromInt(100)
	}
	pct := decimal.NewFromFloat(elapsed.Seconds()).
		Div(decimal.NewFromFloat(total.Seconds())).
		Mul(decimal.NewFromInt(100))
	return pct.Round(2)
}

// DeriveSubscription builds the subscription owed by a subscription-enabled
// purchase. The start date is the delivery date when set, otherwise today;
// the end date is one calendar-correct term later. The caller persists the
// result atomically with the purchase.
func DeriveSubscription(p Purchase, now time.Time) Subscription {
	start := p.DeliveryDate
	if start.IsZero() {
		start = dates.StartOfDay(now)
	}
	end := dates.AddMonths(start, p.SubscriptionMonths)

	status := SubscriptionActive
	if start.After(now) {
		status = SubscriptionPending
	}

	return Subscription{
		PONumber:       p.PONumber,
		PurchaseID:     p.PurchaseID,
		ClientID:       p.ClientID,
		ClientName:     p.ClientName,
		ProductID:      p.ProductID,
		ProductName:    p.ProductName,
		StartDate:      start,
		EndDate:        end,
		TermMonths:     p.SubscriptionMonths,
		RecurringCount: p.RecurringCount,
		TotalAmount:    p.TotalAmount,
		Status:         status,
	}
}
