package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// exchangeRateService provides business logic for exchange rates. Every rate
// is quoted against BDT; conversions between two foreign currencies route
// through the pivot.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

// UpsertRate sets a currency's rate against BDT. The first write for a
// currency inserts at version 1. Later writes must echo the version the
// caller read; a stale version fails with ErrConflict, and the superseded
// value is appended to the history in the same transaction as the update.
func (s *exchangeRateService) UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if code == domain.PivotCurrencyCode {
		return nil, fmt.Errorf("%w: the %s rate is fixed at 1", apperrors.ErrValidation, domain.PivotCurrencyCode)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}

	now := time.Now()

	existing, err := s.rateRepo.FindRate(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up current rate for '%s': %w", code, err)
		}
		// First rate for this currency.
		rate := domain.ExchangeRate{
			CurrencyCode: code,
			Rate:         req.Rate,
			Version:      1,
			LastUpdated:  now,
			Change:       decimal.Zero,
			Trend:        domain.TrendStable,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterUserID,
			},
		}
		if err := s.rateRepo.InsertRate(ctx, rate); err != nil {
			s.LogError(ctx, err, "Failed to insert exchange rate", "currency_code", code)
			return nil, fmt.Errorf("failed to insert exchange rate: %w", err)
		}
		s.LogInfo(ctx, "Exchange rate created", "currency_code", code, "rate", rate.Rate.String())
		return &rate, nil
	}

	if req.Version != existing.Version {
		return nil, fmt.Errorf("%w: rate for '%s' changed since it was read (expected version %d, got %d)",
			apperrors.ErrConflict, code, existing.Version, req.Version)
	}

	change := req.Rate.Sub(existing.Rate)
	updated := domain.ExchangeRate{
		CurrencyCode: code,
		Rate:         req.Rate,
		Version:      existing.Version + 1,
		LastUpdated:  now,
		Change:       change,
		Trend:        domain.TrendFor(change),
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	percentChange := decimal.Zero
	if !existing.Rate.IsZero() {
		percentChange = change.Div(existing.Rate).Mul(decimal.NewFromInt(100)).Round(2)
	}
	history := domain.ExchangeRateHistory{
		HistoryID:     uuid.NewString(),
		CurrencyCode:  code,
		PreviousRate:  existing.Rate,
		Rate:          req.Rate,
		Change:        change,
		PercentChange: percentChange,
		RecordedAt:    now,
		RecordedBy:    updaterUserID,
	}

	if err := s.rateRepo.UpdateRateCAS(ctx, updated, existing.Version, history); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: rate for '%s' changed since it was read", apperrors.ErrConflict, code)
		}
		s.LogError(ctx, err, "Failed to update exchange rate", "currency_code", code)
		return nil, fmt.Errorf("failed to update exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated",
		"currency_code", code,
		"rate", updated.Rate.String(),
		"change", change.String(),
		"version", updated.Version)
	return &updated, nil
}

// GetRate retrieves the current rate of a currency against BDT.
func (s *exchangeRateService) GetRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	rate, err := s.rateRepo.FindRate(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return rate, nil
}

// ListRates retrieves the current rates of all currencies.
func (s *exchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// ListRateHistory retrieves a currency's append-only rate history.
func (s *exchangeRateService) ListRateHistory(ctx context.Context, currencyCode string, page, pageSize int) ([]domain.ExchangeRateHistory, int, error) {
	code := strings.ToUpper(currencyCode)
	rows, total, err := s.rateRepo.ListRateHistory(ctx, code, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exchange rate history: %w", err)
	}
	return rows, total, nil
}

// convertScale is how many decimal places a conversion result keeps. Rounding
// to display precision here would lose up to half a unit of the target
// currency, which a high rate turns into a visible drift on the way back
// through the pivot; six places keep a round trip within a cent for any
// realistic rate. Callers round for presentation.
const convertScale = 6

// Convert converts an amount between two currencies through the BDT pivot.
// Converting to or from BDT itself uses the stored rate directly.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	from := strings.ToUpper(fromCode)
	to := strings.ToUpper(toCode)
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if from == to {
		return amount.Round(convertScale), nil
	}

	inBDT := amount
	if from != domain.PivotCurrencyCode {
		fromRate, err := s.rateRepo.FindRate(ctx, from)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to resolve rate for '%s': %w", from, err)
		}
		inBDT = amount.Mul(fromRate.Rate)
	}

	if to == domain.PivotCurrencyCode {
		return inBDT.Round(convertScale), nil
	}

	toRate, err := s.rateRepo.FindRate(ctx, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve rate for '%s': %w", to, err)
	}
	if toRate.Rate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: rate for '%s' is zero", apperrors.ErrInconsistentState, to)
	}

	return inBDT.Div(toRate.Rate).Round(convertScale), nil
}
