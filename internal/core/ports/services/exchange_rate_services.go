package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate retrieves the current rate of a currency against BDT.
	GetRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves the current rates of all currencies.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// ListRateHistory retrieves a currency's append-only rate history.
	ListRateHistory(ctx context.Context, currencyCode string, page, pageSize int) ([]domain.ExchangeRateHistory, int, error)

	// Convert converts an amount between two currencies, routing through the
	// BDT pivot, rounded to two decimal places.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// UpsertRate sets a currency's rate. Updates are version-checked and
	// append the superseded value to the history; a stale version fails with
	// ErrConflict.
	UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
