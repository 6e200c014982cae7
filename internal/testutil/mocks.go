package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// MockEvaluationRepo is a mock of EvaluationRepository.
type MockEvaluationRepo struct {
	mock.Mock
}

func (m *MockEvaluationRepo) Save(ctx context.Context, eval *domain.Evaluation) error {
	args := m.Called(ctx, eval)
	return args.Error(0)
}

func (m *MockEvaluationRepo) GetByName(ctx context.Context, name string) (*domain.Evaluation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepo) List(ctx context.Context) ([]*domain.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Evaluation), args.Error(1)
}

// MockCustomMetricRepo is a mock of CustomMetricRepository.
type MockCustomMetricRepo struct {
	mock.Mock
}

func (m *MockCustomMetricRepo) Save(ctx context.Context, metric *domain.CustomMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *MockCustomMetricRepo) GetByName(ctx context.Context, name string) (*domain.CustomMetric, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomMetric), args.Error(1)
}

func (m *MockCustomMetricRepo) List(ctx context.Context) ([]*domain.CustomMetric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CustomMetric), args.Error(1)
}

func (m *MockCustomMetricRepo) Delete(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockAppBindingRepo is a mock of AppBindingRepository.
type MockAppBindingRepo struct {
	mock.Mock
}

func (m *MockAppBindingRepo) Declare(ctx context.Context, binding *domain.AppBinding) error {
	args := m.Called(ctx, binding)
	return args.Error(0)
}

func (m *MockAppBindingRepo) Get(ctx context.Context, name string) (*domain.AppBinding, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppBinding), args.Error(1)
}

// MockSchemaManager is a mock of SchemaManager.
type MockSchemaManager struct {
	mock.Mock
}

func (m *MockSchemaManager) EnsureSchema(ctx context.Context, desc domain.ResourceDescriptor) error {
	args := m.Called(ctx, desc)
	return args.Error(0)
}

func (m *MockSchemaManager) EnsureTable(ctx context.Context, spec domain.TableSpec, desc domain.ResourceDescriptor) error {
	args := m.Called(ctx, spec, desc)
	return args.Error(0)
}

// MockStageStore is a mock of StageStore.
type MockStageStore struct {
	mock.Mock
}

func (m *MockStageStore) EnsureBucket(ctx context.Context, desc domain.ResourceDescriptor) error {
	args := m.Called(ctx, desc)
	return args.Error(0)
}

func (m *MockStageStore) Put(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockStageStore) Remove(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStageStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStageStore) List(ctx context.Context, prefix string) ([]ports.StageObject, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.StageObject), args.Error(1)
}

func (m *MockStageStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRepositoryMirror is a mock of RepositoryMirror.
type MockRepositoryMirror struct {
	mock.Mock
}

func (m *MockRepositoryMirror) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryMirror) List(ctx context.Context, subdir string) ([]string, error) {
	args := m.Called(ctx, subdir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepositoryMirror) Open(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
