package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	"github.com/subsadmin/subsadmin_backend/internal/models"
	"github.com/subsadmin/subsadmin_backend/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange rate repository using
// pgxpool. Updates are compare-and-swap on the version column, with the
// superseded value appended to the history inside the same transaction.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const rateColumns = `currency_code, rate, version, last_updated, change, trend,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.Row) (models.ExchangeRate, error) {
	var r models.ExchangeRate
	err := row.Scan(
		&r.CurrencyCode, &r.Rate, &r.Version, &r.LastUpdated, &r.Change, &r.Trend,
		&r.CreatedAt, &r.CreatedBy, &r.LastUpdatedAt, &r.LastUpdatedBy,
	)
	return r, err
}

func (r *PgxExchangeRateRepository) InsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.CurrencyCode, m.Rate, m.Version, m.LastUpdated, m.Change, m.Trend,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert exchange rate for %s: %w", m.CurrencyCode, err)
	}
	return nil
}

// UpdateRateCAS replaces the current rate only if the stored version still
// equals expectedVersion. A zero-row update means another writer got there
// first and surfaces as ErrConflict; nothing is written in that case.
func (r *PgxExchangeRateRepository) UpdateRateCAS(ctx context.Context, rate domain.ExchangeRate, expectedVersion int64, history domain.ExchangeRateHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	m := mapping.ToModelExchangeRate(rate)
	updateQuery := `
		UPDATE exchange_rates
		SET rate = $2, version = $3, last_updated = $4, change = $5, trend = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE currency_code = $1 AND version = $9;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.CurrencyCode, m.Rate, m.Version, m.LastUpdated, m.Change, m.Trend,
		m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update exchange rate for %s: %w", m.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	hm := mapping.ToModelExchangeRateHistory(history)
	historyQuery := `
		INSERT INTO exchange_rate_history (history_id, currency_code, previous_rate, rate,
			change, percent_change, recorded_at, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, historyQuery,
		hm.HistoryID, hm.CurrencyCode, hm.PreviousRate, hm.Rate,
		hm.Change, hm.PercentChange, hm.RecordedAt, hm.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to append exchange rate history for %s: %w", hm.CurrencyCode, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit exchange rate update for %s: %w", m.CurrencyCode, err)
	}
	return nil
}

func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE currency_code = $1;`
	m, err := scanRate(r.db.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", currencyCode, err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates ORDER BY currency_code;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	rates := make([]domain.ExchangeRate, len(modelRows))
	for i := range modelRows {
		rates[i] = mapping.ToDomainExchangeRate(modelRows[i])
	}
	return rates, nil
}

func (r *PgxExchangeRateRepository) ListRateHistory(ctx context.Context, currencyCode string, page, pageSize int) ([]domain.ExchangeRateHistory, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_rate_history WHERE currency_code = $1;`, currencyCode).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count exchange rate history: %w", err)
	}

	limit, offset := pageBounds(page, pageSize)
	query := `
		SELECT history_id, currency_code, previous_rate, rate, change, percent_change, recorded_at, recorded_by
		FROM exchange_rate_history
		WHERE currency_code = $1
		ORDER BY recorded_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, currencyCode, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exchange rate history for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRateHistory, error) {
		var h models.ExchangeRateHistory
		err := row.Scan(
			&h.HistoryID, &h.CurrencyCode, &h.PreviousRate, &h.Rate,
			&h.Change, &h.PercentChange, &h.RecordedAt, &h.RecordedBy,
		)
		return h, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan exchange rate history: %w", err)
	}

	history := make([]domain.ExchangeRateHistory, len(modelRows))
	for i := range modelRows {
		history[i] = mapping.ToDomainExchangeRateHistory(modelRows[i])
	}
	return history, total, nil
}
