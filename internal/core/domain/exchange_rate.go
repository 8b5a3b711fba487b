package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTrend describes the direction of the last rate change.
type RateTrend string

const (
	TrendUp     RateTrend = "UP"
	TrendDown   RateTrend = "DOWN"
	TrendStable RateTrend = "STABLE"
)

// ExchangeRate is the current rate of one currency quoted against BDT.
// Version increments on every update; writers must present the version they
// read so concurrent admin edits cannot silently overwrite each other.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // quoted against BDT
	Rate         decimal.Decimal `json:"rate"`
	Version      int64           `json:"version"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	Change       decimal.Decimal `json:"change"` // delta from the previous rate
	Trend        RateTrend       `json:"trend"`
	AuditFields
}

// ExchangeRateHistory is one superseded rate value. Rows are append-only and
// never mutated; one is written atomically with every rate update.
type ExchangeRateHistory struct {
	HistoryID     string          `json:"historyID"`
	CurrencyCode  string          `json:"currencyCode"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
	Rate          decimal.Decimal `json:"rate"`
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
	RecordedAt    time.Time       `json:"recordedAt"`
	RecordedBy    string          `json:"recordedBy"`
}

// TrendFor classifies the direction of a rate change.
func TrendFor(change decimal.Decimal) RateTrend {
	switch {
	case change.GreaterThan(decimal.Zero):
		return TrendUp
	case change.LessThan(decimal.Zero):
		return TrendDown
	default:
		return TrendStable
	}
}
