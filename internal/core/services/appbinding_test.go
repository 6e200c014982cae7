package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eval-workbench/internal/core/domain"
	"eval-workbench/internal/testutil"
)

func TestAppBinding_Declare(t *testing.T) {
	repo := new(testutil.MockAppBindingRepo)
	svc := NewAppBindingService(repo)

	repo.On("Declare", mock.Anything, mock.MatchedBy(func(b *domain.AppBinding) bool {
		return b.Name == "eval_workbench" && b.QueryWarehouse == "compute_wh" && !b.UpdatedAt.IsZero()
	})).Return(nil)

	err := svc.Declare(context.Background(), domain.AppBinding{
		Name:           "eval_workbench",
		Title:          "Evaluation Workbench",
		StageRoot:      "eval-workbench-stage",
		EntryFile:      "home.py",
		QueryWarehouse: "compute_wh",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAppBinding_Declare_Invalid(t *testing.T) {
	svc := NewAppBindingService(new(testutil.MockAppBindingRepo))

	err := svc.Declare(context.Background(), domain.AppBinding{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidBinding)

	err = svc.Declare(context.Background(), domain.AppBinding{StageRoot: "s", EntryFile: "e"})
	assert.ErrorIs(t, err, domain.ErrInvalidBinding)
}

func TestAppBinding_Get(t *testing.T) {
	repo := new(testutil.MockAppBindingRepo)
	svc := NewAppBindingService(repo)

	expected := &domain.AppBinding{Name: "eval_workbench", EntryFile: "home.py"}
	repo.On("Get", mock.Anything, "eval_workbench").Return(expected, nil)

	binding, err := svc.Get(context.Background(), "eval_workbench")
	require.NoError(t, err)
	assert.Equal(t, "home.py", binding.EntryFile)
}
