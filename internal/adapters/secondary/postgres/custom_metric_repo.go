package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

type customMetricRepo struct {
	pool *pgxpool.Pool
}

// NewCustomMetricRepository creates the metadata side of the custom metric
// pair; the companion binary objects live in the stage.
func NewCustomMetricRepository(pool *pgxpool.Pool) ports.CustomMetricRepository {
	return &customMetricRepo{pool: pool}
}

func (r *customMetricRepo) Save(ctx context.Context, metric *domain.CustomMetric) error {
	query := `
		INSERT INTO custom_metrics (metric_name, stage_file_path, created_at, show_metric, creation_user)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (metric_name) DO UPDATE SET
			stage_file_path = EXCLUDED.stage_file_path,
			created_at = EXCLUDED.created_at,
			show_metric = EXCLUDED.show_metric,
			creation_user = EXCLUDED.creation_user
	`
	_, err := r.pool.Exec(ctx, query,
		metric.MetricName,
		metric.StageFilePath,
		metric.CreatedAt,
		metric.ShowMetric,
		metric.CreationUser,
	)
	if err != nil {
		return fmt.Errorf("upsert custom_metric: %w", err)
	}
	return nil
}

func (r *customMetricRepo) GetByName(ctx context.Context, name string) (*domain.CustomMetric, error) {
	query := `
		SELECT metric_name, stage_file_path, created_at, show_metric, creation_user
		FROM custom_metrics
		WHERE metric_name = $1
	`
	metric, err := scanCustomMetric(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMetricNotFound
		}
		return nil, fmt.Errorf("get custom_metric by name: %w", err)
	}
	return metric, nil
}

func (r *customMetricRepo) List(ctx context.Context) ([]*domain.CustomMetric, error) {
	query := `
		SELECT metric_name, stage_file_path, created_at, show_metric, creation_user
		FROM custom_metrics
		ORDER BY metric_name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query custom_metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*domain.CustomMetric
	for rows.Next() {
		metric, err := scanCustomMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custom_metric: %w", err)
		}
		metrics = append(metrics, metric)
	}
	return metrics, rows.Err()
}

func (r *customMetricRepo) Delete(ctx context.Context, name string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM custom_metrics WHERE metric_name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("delete custom_metric: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func scanCustomMetric(row pgx.Row) (*domain.CustomMetric, error) {
	var metric domain.CustomMetric
	var creationUser *string

	err := row.Scan(
		&metric.MetricName, &metric.StageFilePath, &metric.CreatedAt,
		&metric.ShowMetric, &creationUser,
	)
	if err != nil {
		return nil, err
	}

	if creationUser != nil {
		metric.CreationUser = *creationUser
	}
	return &metric, nil
}
