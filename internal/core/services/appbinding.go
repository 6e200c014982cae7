package services

import (
	"context"
	"time"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// AppBindingService declares the runnable front-end.
type AppBindingService struct {
	repo ports.AppBindingRepository
}

func NewAppBindingService(repo ports.AppBindingRepository) *AppBindingService {
	return &AppBindingService{repo: repo}
}

// Declare upserts the binding, fully replacing it on re-declaration,
// compute resource included.
func (s *AppBindingService) Declare(ctx context.Context, binding domain.AppBinding) error {
	if binding.Name == "" || binding.StageRoot == "" || binding.EntryFile == "" {
		return domain.ErrInvalidBinding
	}
	if binding.UpdatedAt.IsZero() {
		binding.UpdatedAt = time.Now()
	}
	return s.repo.Declare(ctx, &binding)
}

func (s *AppBindingService) Get(ctx context.Context, name string) (*domain.AppBinding, error) {
	return s.repo.Get(ctx, name)
}
