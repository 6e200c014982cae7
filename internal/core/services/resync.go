package services

import (
	"context"

	"eval-workbench/internal/core/domain"
)

// Resync refreshes the mirror and re-runs the declared sync groups. This
// is the on-demand variant of the provisioning run's sync phase; the
// mirror never auto-updates, so the refresh is explicit here too.
func (s *SyncService) Resync(ctx context.Context, groups []domain.SyncGroup) ([]domain.CopyResult, error) {
	if err := s.mirror.Refresh(ctx); err != nil {
		return nil, err
	}
	return s.CopyAll(ctx, groups)
}
