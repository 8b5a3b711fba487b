package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

func termSubscription(start, end time.Time) domain.Subscription {
	return domain.Subscription{
		StartDate:      start,
		EndDate:        end,
		TermMonths:     12,
		RecurringCount: 1,
	}
}

func TestSubscriptionStatusAt(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := termSubscription(start, end)

	tests := []struct {
		name string
		now  time.Time
		want domain.SubscriptionStatus
	}{
		{"before start", start.Add(-24 * time.Hour), domain.SubscriptionPending},
		{"at start", start, domain.SubscriptionActive},
		{"mid term", start.AddDate(0, 6, 0), domain.SubscriptionActive},
		{"just outside expiring window", end.Add(-domain.ExpiringSoonWindow - time.Second), domain.SubscriptionActive},
		{"inside expiring window", end.Add(-domain.ExpiringSoonWindow), domain.SubscriptionExpiringSoon},
		{"at end date", end, domain.SubscriptionExpiringSoon},
		{"past end date", end.Add(time.Second), domain.SubscriptionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sub.StatusAt(tt.now))
		})
	}
}

func TestSubscriptionStatusAtExpiredBeatsPending(t *testing.T) {
	// A malformed term that ended before it started still reads as expired.
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := termSubscription(start, end)

	assert.Equal(t, domain.SubscriptionExpired, sub.StatusAt(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNextBillingDateSingleTerm(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := termSubscription(start, end)

	assert.Equal(t, end, sub.NextBillingDate(start.AddDate(0, 3, 0)))
}

func TestNextBillingDateRecurring(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := domain.Subscription{
		StartDate:      start,
		EndDate:        time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		TermMonths:     3,
		RecurringCount: 4,
	}

	// During the first quarter the next bill lands at the second cycle start.
	next := sub.NextBillingDate(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), next)

	// During the third quarter the next bill lands at the fourth cycle start.
	next = sub.NextBillingDate(time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), next)

	// Once every cycle has begun the date caps at the schedule's end.
	next = sub.NextBillingDate(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestProgressPercent(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(100 * 24 * time.Hour)
	sub := termSubscription(start, end)

	assert.True(t, sub.ProgressPercent(start.Add(-time.Hour)).IsZero())
	assert.True(t, sub.ProgressPercent(start.Add(25*24*time.Hour)).Equal(decimal.NewFromInt(25)))
	assert.True(t, sub.ProgressPercent(end).Equal(decimal.NewFromInt(100)))
	assert.True(t, sub.ProgressPercent(end.Add(time.Hour)).Equal(decimal.NewFromInt(100)))
}

func TestDeriveSubscription(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	purchase := domain.Purchase{
		PurchaseID:         "p-1",
		PONumber:           "PO-AB12CD34",
		ClientID:           "c-1",
		ClientName:         "Acme Traders",
		ProductID:          "pr-1",
		ProductName:        "Mail Hosting",
		SubscriptionMonths: 6,
		RecurringCount:     2,
		DeliveryDate:       delivery,
		TotalAmount:        decimal.RequireFromString("5000.00"),
	}

	sub := domain.DeriveSubscription(purchase, now)

	assert.Equal(t, delivery, sub.StartDate)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), sub.EndDate)
	assert.Equal(t, 6, sub.TermMonths)
	assert.Equal(t, 2, sub.RecurringCount)
	assert.Equal(t, domain.SubscriptionPending, sub.Status, "future delivery date starts the subscription pending")

	// Without a delivery date the term starts today at midnight.
	purchase.DeliveryDate = time.Time{}
	sub = domain.DeriveSubscription(purchase, now)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), sub.StartDate)
	assert.Equal(t, domain.SubscriptionActive, sub.Status)
}
