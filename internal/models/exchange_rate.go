package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the persisted current rate of a currency against BDT.
// version backs the compare-and-swap update.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	Rate         decimal.Decimal `db:"rate"`
	Version      int64           `db:"version"`
	LastUpdated  time.Time       `db:"last_updated"`
	Change       decimal.Decimal `db:"change"`
	Trend        string          `db:"trend"`
	AuditFields
}

// ExchangeRateHistory is one append-only superseded rate row.
type ExchangeRateHistory struct {
	HistoryID     string          `db:"history_id"`
	CurrencyCode  string          `db:"currency_code"`
	PreviousRate  decimal.Decimal `db:"previous_rate"`
	Rate          decimal.Decimal `db:"rate"`
	Change        decimal.Decimal `db:"change"`
	PercentChange decimal.Decimal `db:"percent_change"`
	RecordedAt    time.Time       `db:"recorded_at"`
	RecordedBy    string          `db:"recorded_by"`
}
