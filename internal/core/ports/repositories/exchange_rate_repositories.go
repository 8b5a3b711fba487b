package repositories

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRate retrieves the current rate for a currency (quoted against BDT).
	FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves the current rate for every known currency.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// ListRateHistory retrieves a currency's append-only history, newest first.
	ListRateHistory(ctx context.Context, currencyCode string, page, pageSize int) ([]domain.ExchangeRateHistory, int, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// InsertRate persists the first rate for a currency (version 1, no history).
	InsertRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateRateCAS replaces the current rate only if the stored version still
	// equals expectedVersion, appending the superseded value to the history
	// in the same transaction. Returns ErrConflict on a stale version.
	UpdateRateCAS(ctx context.Context, rate domain.ExchangeRate, expectedVersion int64, history domain.ExchangeRateHistory) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
