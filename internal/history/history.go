package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecofootprint/ecofootprint/internal/footprint"
)

// Analysis is one persisted URL analysis.
type Analysis struct {
	ID          string          `json:"id"`
	URL         string          `json:"url"`
	ProductName string          `json:"productName"`
	TotalGrams  int             `json:"totalGrams"`
	Breakdown   json.RawMessage `json:"breakdown"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Store keeps a history of computed analyses in Postgres. Writes are
// best-effort: a failed insert is logged and the request proceeds.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func New(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the analyses table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			url TEXT NOT NULL,
			product_name TEXT NOT NULL DEFAULT '',
			total_grams INTEGER NOT NULL,
			breakdown JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// Record persists one computed footprint for a URL. A nil Store (history
// disabled) and insert failures are both silent to the caller.
func (s *Store) Record(ctx context.Context, url string, fp footprint.Footprint) {
	if s == nil {
		return
	}

	breakdown, err := json.Marshal(fp.Breakdown)
	if err != nil {
		s.logger.Warn("failed to marshal breakdown for history", "error", err)
		return
	}

	query := `
		INSERT INTO analyses (id, url, product_name, total_grams, breakdown)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.pool.Exec(ctx, query,
		uuid.NewString(), url, fp.ProductName, fp.CarbonFootprint, breakdown,
	)
	if err != nil {
		s.logger.Warn("failed to record analysis", "url", url, "error", err)
	}
}

// Recent returns the latest analyses, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Analysis, error) {
	if s == nil {
		return []Analysis{}, nil
	}

	query := `
		SELECT id, url, product_name, total_grams, breakdown, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]Analysis, 0, limit)
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.URL, &a.ProductName, &a.TotalGrams, &a.Breakdown, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}

	return analyses, nil
}
