package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yxchen/macro-data/internal/model"
)

// ErrUnknownType marks a write whose data class has no catalog entry. The
// record is rejected, not coerced.
var ErrUnknownType = errors.New("unknown data type code")

// Store persists canonical observations in PostgreSQL.
type Store struct {
	db     *pgxpool.Pool
	logger *slog.Logger

	mu      sync.RWMutex
	typeIDs map[string]int32
}

// New creates a Store over an existing pool.
func New(db *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:      db,
		logger:  logger,
		typeIDs: make(map[string]int32),
	}
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS macro_data_types (
			id SERIAL PRIMARY KEY,
			type_code VARCHAR(50) UNIQUE NOT NULL,
			type_name VARCHAR(100) NOT NULL,
			description TEXT,
			unit VARCHAR(20),
			data_frequency VARCHAR(20),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS macro_data (
			id SERIAL PRIMARY KEY,
			type_id INTEGER REFERENCES macro_data_types(id),
			source VARCHAR(50) NOT NULL,
			symbol VARCHAR(100) NOT NULL,
			data_date DATE NOT NULL,
			value DECIMAL(20,6),
			open_price DECIMAL(20,6),
			high_price DECIMAL(20,6),
			low_price DECIMAL(20,6),
			close_price DECIMAL(20,6),
			volume BIGINT,
			additional_data JSONB,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE(type_id, symbol, data_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_macro_data_type_symbol ON macro_data(type_id, symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_macro_data_date ON macro_data(data_date)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedTypes inserts the type catalog. Existing entries are left untouched.
func (s *Store) SeedTypes(ctx context.Context) error {
	for _, t := range typeCatalog {
		_, err := s.db.Exec(ctx, `
			INSERT INTO macro_data_types (type_code, type_name, description, unit, data_frequency)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (type_code) DO NOTHING
		`, t.Code, t.Name, t.Description, t.Unit, t.Frequency)
		if err != nil {
			return fmt.Errorf("seed type %s: %w", t.Code, err)
		}
	}
	return nil
}

// typeID resolves a type code to its catalog ID, caching lookups. Tasks
// run concurrently, so the cache is guarded.
func (s *Store) typeID(ctx context.Context, code string) (int32, error) {
	s.mu.RLock()
	id, ok := s.typeIDs[code]
	s.mu.RUnlock()
	if ok {
		return id, nil
	}

	err := s.db.QueryRow(ctx,
		`SELECT id FROM macro_data_types WHERE type_code = $1`, code,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, code)
	}
	if err != nil {
		return 0, fmt.Errorf("lookup type %s: %w", code, err)
	}

	s.mu.Lock()
	s.typeIDs[code] = id
	s.mu.Unlock()
	return id, nil
}

// Upsert writes one observation. A write colliding on (type_id, symbol,
// data_date) updates the mutable fields in place. Returns created=true for
// a fresh row, false for an update.
func (s *Store) Upsert(ctx context.Context, obs model.Observation) (bool, error) {
	typeID, err := s.typeID(ctx, obs.TypeCode)
	if err != nil {
		return false, err
	}

	extra, err := json.Marshal(obs.AdditionalData)
	if err != nil {
		return false, fmt.Errorf("marshal additional data: %w", err)
	}

	var created bool
	err = s.db.QueryRow(ctx, `
		INSERT INTO macro_data (type_id, source, symbol, data_date, value,
		                        open_price, high_price, low_price, close_price,
		                        volume, additional_data, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (type_id, symbol, data_date)
		DO UPDATE SET
			source = EXCLUDED.source,
			value = EXCLUDED.value,
			open_price = EXCLUDED.open_price,
			high_price = EXCLUDED.high_price,
			low_price = EXCLUDED.low_price,
			close_price = EXCLUDED.close_price,
			volume = EXCLUDED.volume,
			additional_data = EXCLUDED.additional_data,
			updated_at = NOW()
		RETURNING (xmax = 0)
	`, typeID, obs.Source, obs.Symbol, obs.Date, obs.Value,
		obs.Open, obs.High, obs.Low, obs.Close,
		obs.Volume, extra,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert %s %s: %w", obs.Symbol, obs.Date.Format("2006-01-02"), err)
	}
	return created, nil
}

// Exists reports whether an observation is already stored for the key.
func (s *Store) Exists(ctx context.Context, typeCode, symbol string, date time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM macro_data d
			JOIN macro_data_types t ON t.id = d.type_id
			WHERE t.type_code = $1 AND d.symbol = $2 AND d.data_date = $3
		)
	`, typeCode, symbol, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check existence: %w", err)
	}
	return exists, nil
}

// LatestObservation returns the most recent stored date and the total row
// count for a symbol under a source. A zero time means no rows exist.
func (s *Store) LatestObservation(ctx context.Context, symbol, source string) (time.Time, int, error) {
	var (
		latest *time.Time
		count  int
	)
	err := s.db.QueryRow(ctx, `
		SELECT MAX(data_date), COUNT(*)
		FROM macro_data
		WHERE symbol = $1 AND source = $2
	`, symbol, source).Scan(&latest, &count)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("latest observation for %s: %w", symbol, err)
	}
	if latest == nil {
		return time.Time{}, 0, nil
	}
	return *latest, count, nil
}

// QueryRange returns every stored row for a symbol inside [from, to],
// across all sources, ordered by date then source. Callers wanting one
// authoritative series run the result through the dedup resolver.
func (s *Store) QueryRange(ctx context.Context, symbol string, from, to time.Time) ([]model.StoredObservation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT d.id, t.type_code, d.source, d.symbol, d.data_date,
		       d.value, d.open_price, d.high_price, d.low_price, d.close_price,
		       d.volume, d.additional_data, d.created_at, d.updated_at
		FROM macro_data d
		JOIN macro_data_types t ON t.id = d.type_id
		WHERE d.symbol = $1 AND d.data_date BETWEEN $2 AND $3
		ORDER BY d.data_date, d.source
	`, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("query range for %s: %w", symbol, err)
	}
	defer rows.Close()

	var out []model.StoredObservation
	for rows.Next() {
		var (
			o     model.StoredObservation
			extra []byte
		)
		if err := rows.Scan(
			&o.ID, &o.TypeCode, &o.Source, &o.Symbol, &o.Date,
			&o.Value, &o.Open, &o.High, &o.Low, &o.Close,
			&o.Volume, &extra, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &o.AdditionalData); err != nil {
				s.logger.Warn("bad additional_data payload", "id", o.ID, "error", err)
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
