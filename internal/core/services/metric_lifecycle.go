package services

import (
	"context"
	"time"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// MetricLifecycleService keeps a custom metric's two halves consistent:
// the companion binary object in the stage and the describing metadata
// row. The two stores share no transaction coordinator, so deletion is
// ordered and each step's result is reported individually.
type MetricLifecycleService struct {
	stage   ports.StageStore
	metrics ports.CustomMetricRepository
}

func NewMetricLifecycleService(stage ports.StageStore, metrics ports.CustomMetricRepository) *MetricLifecycleService {
	return &MetricLifecycleService{stage: stage, metrics: metrics}
}

// Delete removes the companion object, then the metadata row. A missing
// object or row is a no-op, which makes the routine safe to retry and safe
// under concurrent invocation for the same name. If the object store
// fails, the row is left untouched so the pair never ends up with a
// dangling reference created by the cleanup tool itself.
func (s *MetricLifecycleService) Delete(ctx context.Context, metricName string) (domain.DeleteOutcome, error) {
	if !domain.ValidMetricName(metricName) {
		return domain.DeleteOutcome{}, domain.ErrInvalidMetricName
	}

	key := domain.MetricObjectKey(metricName)
	outcome := domain.DeleteOutcome{MetricName: metricName, ObjectKey: key}

	objectRemoved, err := s.stage.Remove(ctx, key)
	if err != nil {
		outcome.Kind = domain.DeleteStoreUnreachable
		outcome.Detail = err.Error()
		return outcome, nil
	}
	outcome.ObjectRemoved = objectRemoved

	rowRemoved, err := s.metrics.Delete(ctx, metricName)
	if err != nil {
		outcome.Kind = domain.DeleteStoreUnreachable
		outcome.Detail = err.Error()
		return outcome, nil
	}
	outcome.RowRemoved = rowRemoved

	switch {
	case objectRemoved && rowRemoved:
		outcome.Kind = domain.DeleteRemoved
	case !objectRemoved:
		outcome.Kind = domain.DeleteObjectAlreadyAbsent
	default:
		outcome.Kind = domain.DeleteRowAlreadyAbsent
	}
	return outcome, nil
}

// Register records a metric row. The stage file path is derived from the
// name; the running application is responsible for writing the companion
// object itself.
func (s *MetricLifecycleService) Register(ctx context.Context, metric *domain.CustomMetric) error {
	if !domain.ValidMetricName(metric.MetricName) {
		return domain.ErrInvalidMetricName
	}
	if metric.StageFilePath == "" {
		metric.StageFilePath = domain.MetricObjectKey(metric.MetricName)
	}
	if metric.CreatedAt.IsZero() {
		metric.CreatedAt = time.Now()
	}
	return s.metrics.Save(ctx, metric)
}

func (s *MetricLifecycleService) Get(ctx context.Context, name string) (*domain.CustomMetric, error) {
	return s.metrics.GetByName(ctx, name)
}

func (s *MetricLifecycleService) List(ctx context.Context) ([]*domain.CustomMetric, error) {
	return s.metrics.List(ctx)
}

// Audit reports dangling references: rows whose companion object is
// missing from the stage. Hidden rows own a live object too, so every row
// is checked regardless of its visibility flag.
func (s *MetricLifecycleService) Audit(ctx context.Context) ([]domain.DanglingMetric, error) {
	metrics, err := s.metrics.List(ctx)
	if err != nil {
		return nil, err
	}

	var dangling []domain.DanglingMetric
	for _, m := range metrics {
		key := domain.MetricObjectKey(m.MetricName)
		exists, err := s.stage.Exists(ctx, key)
		if err != nil {
			return nil, err
		}
		if !exists {
			dangling = append(dangling, domain.DanglingMetric{
				MetricName: m.MetricName,
				ObjectKey:  key,
				ShowMetric: m.ShowMetric,
			})
		}
	}
	return dangling, nil
}
