package mapping

import (
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelExchangeRate converts a domain exchange rate to its persisted form.
func ToModelExchangeRate(r domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyCode: r.CurrencyCode,
		Rate:         r.Rate,
		Version:      r.Version,
		LastUpdated:  r.LastUpdated,
		Change:       r.Change,
		Trend:        string(r.Trend),
		AuditFields:  ToModelAuditFields(r.AuditFields),
	}
}

// ToDomainExchangeRate converts a persisted rate row to the domain form.
func ToDomainExchangeRate(r models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyCode: r.CurrencyCode,
		Rate:         r.Rate,
		Version:      r.Version,
		LastUpdated:  r.LastUpdated,
		Change:       r.Change,
		Trend:        domain.RateTrend(r.Trend),
		AuditFields:  ToDomainAuditFields(r.AuditFields),
	}
}

// ToModelExchangeRateHistory converts a domain history row to its persisted form.
func ToModelExchangeRateHistory(h domain.ExchangeRateHistory) models.ExchangeRateHistory {
	return models.ExchangeRateHistory{
		HistoryID:     h.HistoryID,
		CurrencyCode:  h.CurrencyCode,
		PreviousRate:  h.PreviousRate,
		Rate:          h.Rate,
		Change:        h.Change,
		PercentChange: h.PercentChange,
		RecordedAt:    h.RecordedAt,
		RecordedBy:    h.RecordedBy,
	}
}

// ToDomainExchangeRateHistory converts a persisted history row to the domain form.
func ToDomainExchangeRateHistory(h models.ExchangeRateHistory) domain.ExchangeRateHistory {
	return domain.ExchangeRateHistory{
		HistoryID:     h.HistoryID,
		CurrencyCode:  h.CurrencyCode,
		PreviousRate:  h.PreviousRate,
		Rate:          h.Rate,
		Change:        h.Change,
		PercentChange: h.PercentChange,
		RecordedAt:    h.RecordedAt,
		RecordedBy:    h.RecordedBy,
	}
}
