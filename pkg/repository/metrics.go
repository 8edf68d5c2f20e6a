package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedwall/pkg/domain"
)

// MetricsRepository caches natural image dimensions by image url
type MetricsRepository struct {
	db  *sqlx.DB
	ttl time.Duration
}

type metricsRow struct {
	URL       string  `db:"url"`
	Width     float64 `db:"width"`
	Height    float64 `db:"height"`
	UpdatedAt int64   `db:"updated_at"`
}

// NewMetricsRepository creates a new image metrics repository, zero ttl never expires records
func NewMetricsRepository(db *sqlx.DB, ttl time.Duration) *MetricsRepository {
	return &MetricsRepository{db: db, ttl: ttl}
}

// GetMetrics returns cached metrics for the url. Missing and expired records are reported as not found.
func (r *MetricsRepository) GetMetrics(ctx context.Context, url string) (domain.ImageMetrics, bool, error) {
	var row metricsRow
	err := r.db.GetContext(ctx, &row, "SELECT url, width, height, updated_at FROM image_metrics WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ImageMetrics{}, false, nil
	}
	if err != nil {
		return domain.ImageMetrics{}, false, fmt.Errorf("get image metrics: %w", err)
	}
	if r.ttl > 0 && time.Since(time.Unix(row.UpdatedAt, 0)) > r.ttl {
		return domain.ImageMetrics{}, false, nil
	}
	return domain.ImageMetrics{Width: row.Width, Height: row.Height}, true, nil
}

// PutMetrics stores metrics for the url, replacing the previous record
func (r *MetricsRepository) PutMetrics(ctx context.Context, url string, m domain.ImageMetrics) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO image_metrics (url, width, height, updated_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(url) DO UPDATE SET width = excluded.width, height = excluded.height, updated_at = excluded.updated_at
		`
		_, err := r.db.ExecContext(ctx, query, url, m.Width, m.Height, time.Now().Unix())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("put image metrics: %w", err)}
		}
		return nil
	})
}

// PruneMetrics removes records older than ttl and returns number of removed records
func (r *MetricsRepository) PruneMetrics(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}
	var removed int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM image_metrics WHERE updated_at < ?", time.Now().Add(-r.ttl).Unix())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("prune image metrics: %w", err)}
		}
		removed, _ = res.RowsAffected()
		return nil
	})
	return removed, err
}

// CountMetrics returns number of cached records
func (r *MetricsRepository) CountMetrics(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM image_metrics"); err != nil {
		return 0, fmt.Errorf("count image metrics: %w", err)
	}
	return count, nil
}
