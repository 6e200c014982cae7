package services

import (
	"context"
	"fmt"
	"path"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// SyncService copies selected file subsets from the repository mirror into
// the stage. Copies overwrite existing objects (last write wins); there is
// no conflict detection. Re-running a group with the same inputs is
// idempotent.
type SyncService struct {
	mirror ports.RepositoryMirror
	stage  ports.StageStore
}

func NewSyncService(mirror ports.RepositoryMirror, stage ports.StageStore) *SyncService {
	return &SyncService{mirror: mirror, stage: stage}
}

// Copy stages every mirror file under the group's source ref that the
// selector matches. A selector matching nothing is fatal for the
// invocation; previously copied groups are not rolled back.
func (s *SyncService) Copy(ctx context.Context, group domain.SyncGroup) (*domain.CopyResult, error) {
	if err := validateSelector(group.Selector); err != nil {
		return nil, fmt.Errorf("group %s: %w", group.Name, err)
	}

	files, err := s.mirror.List(ctx, group.SourceRef)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", group.Name, err)
	}

	var matched []string
	for _, f := range files {
		if group.Selector.Matches(f) {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("group %s: %w", group.Name, domain.ErrNoFilesMatched)
	}

	result := &domain.CopyResult{Group: group.Name}
	for _, f := range matched {
		data, err := s.mirror.Open(ctx, path.Join(group.SourceRef, f))
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", group.Name, err)
		}
		key := path.Join(group.DestinationPrefix, f)
		if err := s.stage.Put(ctx, key, data); err != nil {
			return nil, fmt.Errorf("group %s: %w", group.Name, err)
		}
		result.Copied = append(result.Copied, key)
	}
	return result, nil
}

// CopyAll runs the groups in declared order; later groups win on
// overlapping destinations.
func (s *SyncService) CopyAll(ctx context.Context, groups []domain.SyncGroup) ([]domain.CopyResult, error) {
	results := make([]domain.CopyResult, 0, len(groups))
	for _, group := range groups {
		result, err := s.Copy(ctx, group)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func validateSelector(sel domain.Selector) error {
	hasNames := len(sel.Names) > 0
	hasPattern := sel.Pattern != ""
	if hasNames == hasPattern {
		return domain.ErrInvalidSelector
	}
	if hasPattern {
		if err := sel.Compile(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidSelector, err)
		}
	}
	return nil
}
