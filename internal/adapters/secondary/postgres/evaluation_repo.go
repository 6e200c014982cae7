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

type evaluationRepo struct {
	pool  *pgxpool.Pool
	table string
}

// NewEvaluationRepository creates a repository over one of the two
// structurally identical evaluation tables (saved or auto).
func NewEvaluationRepository(pool *pgxpool.Pool, table string) ports.EvaluationRepository {
	return &evaluationRepo{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

func (r *evaluationRepo) Save(ctx context.Context, eval *domain.Evaluation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (eval_name, description, metric_names, source_sql, param_assignments, associated_objects, models, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (eval_name) DO UPDATE SET
			description = EXCLUDED.description,
			metric_names = EXCLUDED.metric_names,
			source_sql = EXCLUDED.source_sql,
			param_assignments = EXCLUDED.param_assignments,
			associated_objects = EXCLUDED.associated_objects,
			models = EXCLUDED.models,
			updated_at = EXCLUDED.updated_at
	`, r.table)
	_, err := r.pool.Exec(ctx, query,
		eval.Name,
		eval.Description,
		eval.MetricNames,
		eval.SourceQuery,
		eval.ParamAssignments,
		eval.AssociatedObjects,
		eval.Models,
		eval.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepo) GetByName(ctx context.Context, name string) (*domain.Evaluation, error) {
	query := fmt.Sprintf(`
		SELECT eval_name, description, metric_names, source_sql, param_assignments, associated_objects, models, updated_at
		FROM %s
		WHERE eval_name = $1
	`, r.table)
	eval, err := scanEvaluation(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("get evaluation by name: %w", err)
	}
	return eval, nil
}

func (r *evaluationRepo) List(ctx context.Context) ([]*domain.Evaluation, error) {
	query := fmt.Sprintf(`
		SELECT eval_name, description, metric_names, source_sql, param_assignments, associated_objects, models, updated_at
		FROM %s
		ORDER BY eval_name
	`, r.table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var evals []*domain.Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}

func scanEvaluation(row pgx.Row) (*domain.Evaluation, error) {
	var eval domain.Evaluation
	var description *string

	err := row.Scan(
		&eval.Name, &description, &eval.MetricNames, &eval.SourceQuery,
		&eval.ParamAssignments, &eval.AssociatedObjects, &eval.Models, &eval.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		eval.Description = *description
	}
	return &eval, nil
}
