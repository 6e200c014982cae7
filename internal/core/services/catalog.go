package services

import (
	"context"
	"time"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// EvaluationCatalogService fronts the two evaluation tables. A save under
// an existing name overwrites the stored row.
type EvaluationCatalogService struct {
	saved ports.EvaluationRepository
	auto  ports.EvaluationRepository
}

func NewEvaluationCatalogService(saved, auto ports.EvaluationRepository) *EvaluationCatalogService {
	return &EvaluationCatalogService{saved: saved, auto: auto}
}

func (s *EvaluationCatalogService) Save(ctx context.Context, kind domain.EvaluationKind, eval *domain.Evaluation) error {
	if eval.Name == "" {
		return domain.ErrInvalidEvaluationName
	}

	// Nil collections would encode as SQL NULL against NOT NULL columns;
	// an omitted field means empty, not absent.
	if eval.MetricNames == nil {
		eval.MetricNames = []string{}
	}
	if eval.ParamAssignments == nil {
		eval.ParamAssignments = map[string]interface{}{}
	}
	if eval.AssociatedObjects == nil {
		eval.AssociatedObjects = map[string]interface{}{}
	}
	if eval.Models == nil {
		eval.Models = map[string]interface{}{}
	}

	if eval.UpdatedAt.IsZero() {
		eval.UpdatedAt = time.Now()
	}
	return s.repoFor(kind).Save(ctx, eval)
}

func (s *EvaluationCatalogService) Get(ctx context.Context, kind domain.EvaluationKind, name string) (*domain.Evaluation, error) {
	return s.repoFor(kind).GetByName(ctx, name)
}

func (s *EvaluationCatalogService) List(ctx context.Context, kind domain.EvaluationKind) ([]*domain.Evaluation, error) {
	return s.repoFor(kind).List(ctx)
}

func (s *EvaluationCatalogService) repoFor(kind domain.EvaluationKind) ports.EvaluationRepository {
	if kind == domain.EvaluationKindAuto {
		return s.auto
	}
	return s.saved
}
