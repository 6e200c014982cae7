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

type appBindingRepo struct {
	pool *pgxpool.Pool
}

func NewAppBindingRepository(pool *pgxpool.Pool) ports.AppBindingRepository {
	return &appBindingRepo{pool: pool}
}

func (r *appBindingRepo) Declare(ctx context.Context, binding *domain.AppBinding) error {
	// Re-declaration fully replaces the binding, compute resource included.
	query := `
		INSERT INTO app_bindings (app_name, title, stage_root, entry_file, query_warehouse, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (app_name) DO UPDATE SET
			title = EXCLUDED.title,
			stage_root = EXCLUDED.stage_root,
			entry_file = EXCLUDED.entry_file,
			query_warehouse = EXCLUDED.query_warehouse,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		binding.Name,
		binding.Title,
		binding.StageRoot,
		binding.EntryFile,
		binding.QueryWarehouse,
		binding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert app_binding: %w", err)
	}
	return nil
}

func (r *appBindingRepo) Get(ctx context.Context, name string) (*domain.AppBinding, error) {
	query := `
		SELECT app_name, title, stage_root, entry_file, query_warehouse, updated_at
		FROM app_bindings
		WHERE app_name = $1
	`
	var binding domain.AppBinding
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&binding.Name, &binding.Title, &binding.StageRoot,
		&binding.EntryFile, &binding.QueryWarehouse, &binding.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBindingNotFound
		}
		return nil, fmt.Errorf("get app_binding: %w", err)
	}
	return &binding, nil
}
