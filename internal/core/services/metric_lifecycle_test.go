package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eval-workbench/internal/core/domain"
	"eval-workbench/internal/testutil"
)

func TestMetricLifecycle_Delete_RemovesPair(t *testing.T) {
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "alpha.pkl", []byte("pickled")))

	repo := new(testutil.MockCustomMetricRepo)
	repo.On("Delete", mock.Anything, "alpha").Return(true, nil)

	svc := NewMetricLifecycleService(stage, repo)
	outcome, err := svc.Delete(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, domain.DeleteRemoved, outcome.Kind)
	assert.True(t, outcome.ObjectRemoved)
	assert.True(t, outcome.RowRemoved)
	assert.Contains(t, outcome.Message(), "alpha.pkl")

	exists, _ := stage.Exists(context.Background(), "alpha.pkl")
	assert.False(t, exists)
	repo.AssertExpectations(t)
}

func TestMetricLifecycle_Delete_Twice(t *testing.T) {
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "m.pkl", []byte("pickled")))

	repo := new(testutil.MockCustomMetricRepo)
	repo.On("Delete", mock.Anything, "m").Return(true, nil).Once()
	repo.On("Delete", mock.Anything, "m").Return(false, nil).Once()

	svc := NewMetricLifecycleService(stage, repo)

	first, err := svc.Delete(context.Background(), "m")
	require.NoError(t, err)
	assert.False(t, first.Failed())
	assert.Equal(t, domain.DeleteRemoved, first.Kind)

	second, err := svc.Delete(context.Background(), "m")
	require.NoError(t, err)
	assert.False(t, second.Failed())
	assert.Equal(t, domain.DeleteObjectAlreadyAbsent, second.Kind)
	assert.False(t, second.ObjectRemoved)
	assert.False(t, second.RowRemoved)

	exists, _ := stage.Exists(context.Background(), "m.pkl")
	assert.False(t, exists)
	repo.AssertExpectations(t)
}

func TestMetricLifecycle_Delete_ObjectStoreFailureLeavesRow(t *testing.T) {
	stage := testutil.NewFakeStage()
	stage.FailRemove = errors.New("object store is write-protected")

	repo := new(testutil.MockCustomMetricRepo)

	svc := NewMetricLifecycleService(stage, repo)
	outcome, err := svc.Delete(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, domain.DeleteStoreUnreachable, outcome.Kind)
	assert.True(t, outcome.Failed())
	assert.Contains(t, outcome.Message(), "write-protected")

	// Step 2 must not run on step 1 failure: the row stays put so the pair
	// cannot end up as a dangling reference.
	repo.AssertNotCalled(t, "Delete", mock.Anything, "alpha")
}

func TestMetricLifecycle_Delete_RowStoreFailure(t *testing.T) {
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "alpha.pkl", []byte("pickled")))

	repo := new(testutil.MockCustomMetricRepo)
	repo.On("Delete", mock.Anything, "alpha").Return(false, errors.New("connection refused"))

	svc := NewMetricLifecycleService(stage, repo)
	outcome, err := svc.Delete(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, domain.DeleteStoreUnreachable, outcome.Kind)
	assert.True(t, outcome.ObjectRemoved)
	assert.False(t, outcome.RowRemoved)
}

func TestMetricLifecycle_Delete_RowAlreadyAbsent(t *testing.T) {
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "orphan.pkl", []byte("pickled")))

	repo := new(testutil.MockCustomMetricRepo)
	repo.On("Delete", mock.Anything, "orphan").Return(false, nil)

	svc := NewMetricLifecycleService(stage, repo)
	outcome, err := svc.Delete(context.Background(), "orphan")
	require.NoError(t, err)

	assert.Equal(t, domain.DeleteRowAlreadyAbsent, outcome.Kind)
	assert.True(t, outcome.ObjectRemoved)
}

func TestMetricLifecycle_Delete_InvalidName(t *testing.T) {
	svc := NewMetricLifecycleService(testutil.NewFakeStage(), new(testutil.MockCustomMetricRepo))

	_, err := svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidMetricName)

	_, err = svc.Delete(context.Background(), "../escape")
	assert.ErrorIs(t, err, domain.ErrInvalidMetricName)
}

func TestMetricLifecycle_Register(t *testing.T) {
	repo := new(testutil.MockCustomMetricRepo)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.CustomMetric")).Return(nil)

	svc := NewMetricLifecycleService(testutil.NewFakeStage(), repo)
	metric := &domain.CustomMetric{MetricName: "precision", ShowMetric: true, CreationUser: "analyst"}
	require.NoError(t, svc.Register(context.Background(), metric))

	assert.Equal(t, "precision.pkl", metric.StageFilePath)
	assert.False(t, metric.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestMetricLifecycle_Audit(t *testing.T) {
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "live.pkl", []byte("pickled")))

	repo := new(testutil.MockCustomMetricRepo)
	repo.On("List", mock.Anything).Return([]*domain.CustomMetric{
		{MetricName: "live", StageFilePath: "live.pkl", CreatedAt: time.Now(), ShowMetric: true},
		{MetricName: "ghost", StageFilePath: "ghost.pkl", CreatedAt: time.Now(), ShowMetric: false},
	}, nil)

	svc := NewMetricLifecycleService(stage, repo)
	dangling, err := svc.Audit(context.Background())
	require.NoError(t, err)

	// Hidden rows own a live companion object too, so the hidden ghost row
	// is reported just like a visible one would be.
	require.Len(t, dangling, 1)
	assert.Equal(t, "ghost", dangling[0].MetricName)
	assert.Equal(t, "ghost.pkl", dangling[0].ObjectKey)
	assert.False(t, dangling[0].ShowMetric)
}
