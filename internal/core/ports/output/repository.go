package ports

import (
	"context"

	"eval-workbench/internal/core/domain"
)

// EvaluationRepository backs one of the two evaluation tables; the saved
// and auto tables are structurally identical, so one interface serves both.
type EvaluationRepository interface {
	// Save upserts by name: a name collision overwrites the existing row.
	Save(ctx context.Context, eval *domain.Evaluation) error
	GetByName(ctx context.Context, name string) (*domain.Evaluation, error)
	List(ctx context.Context) ([]*domain.Evaluation, error)
}

type CustomMetricRepository interface {
	Save(ctx context.Context, metric *domain.CustomMetric) error
	GetByName(ctx context.Context, name string) (*domain.CustomMetric, error)
	List(ctx context.Context) ([]*domain.CustomMetric, error)
	// Delete removes the row by exact name. Deleting a non-existent row is
	// a no-op reported as deleted=false, not an error.
	Delete(ctx context.Context, name string) (deleted bool, err error)
}

type AppBindingRepository interface {
	// Declare upserts by name, fully replacing the binding on re-declaration.
	Declare(ctx context.Context, binding *domain.AppBinding) error
	Get(ctx context.Context, name string) (*domain.AppBinding, error)
}
