package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eval-workbench/internal/core/domain"
	"eval-workbench/internal/testutil"
)

func mirrorFixture() *testutil.FakeMirror {
	return testutil.NewFakeMirror(map[string][]byte{
		"home.py":             []byte("import streamlit"),
		"environment.yml":     []byte("name: app"),
		"readme.md":           []byte("# app"),
		"src/app_utils.py":    []byte("def render(): ..."),
		"src/metric_utils.py": []byte("def run(): ..."),
		"src/notes.txt":       []byte("scratch"),
		"pages/results.py":    []byte("def page(): ..."),
	})
}

func TestSync_Copy_NameSelector(t *testing.T) {
	mirror := mirrorFixture()
	stage := testutil.NewFakeStage()
	svc := NewSyncService(mirror, stage)

	result, err := svc.Copy(context.Background(), domain.SyncGroup{
		Name:     "root",
		Selector: domain.Selector{Names: []string{"home.py", "environment.yml"}},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"home.py", "environment.yml"}, result.Copied)
	assert.Equal(t, []byte("import streamlit"), stage.Objects["home.py"])
	assert.Equal(t, []byte("name: app"), stage.Objects["environment.yml"])
	assert.NotContains(t, stage.Objects, "readme.md")
}

func TestSync_Copy_PatternSelector(t *testing.T) {
	mirror := mirrorFixture()
	stage := testutil.NewFakeStage()
	svc := NewSyncService(mirror, stage)

	result, err := svc.Copy(context.Background(), domain.SyncGroup{
		Name:              "src",
		SourceRef:         "src",
		DestinationPrefix: "src",
		Selector:          domain.Selector{Pattern: `.*\.py$`},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"src/app_utils.py", "src/metric_utils.py"}, result.Copied)
	assert.NotContains(t, stage.Objects, "src/notes.txt")
}

func TestSync_Copy_Idempotent(t *testing.T) {
	mirror := mirrorFixture()
	stage := testutil.NewFakeStage()
	svc := NewSyncService(mirror, stage)

	group := domain.SyncGroup{
		Name:              "src",
		SourceRef:         "src",
		DestinationPrefix: "src",
		Selector:          domain.Selector{Pattern: `.*\.py$`},
	}

	_, err := svc.Copy(context.Background(), group)
	require.NoError(t, err)
	first := make(map[string][]byte, len(stage.Objects))
	for k, v := range stage.Objects {
		first[k] = append([]byte(nil), v...)
	}

	_, err = svc.Copy(context.Background(), group)
	require.NoError(t, err)
	assert.Equal(t, first, stage.Objects)
}

func TestSync_Copy_OverwriteLastWriteWins(t *testing.T) {
	mirror := mirrorFixture()
	stage := testutil.NewFakeStage()
	require.NoError(t, stage.Put(context.Background(), "home.py", []byte("stale bytes")))

	svc := NewSyncService(mirror, stage)
	_, err := svc.Copy(context.Background(), domain.SyncGroup{
		Name:     "root",
		Selector: domain.Selector{Names: []string{"home.py"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("import streamlit"), stage.Objects["home.py"])
}

func TestSync_Copy_NoMatchIsFatal(t *testing.T) {
	svc := NewSyncService(mirrorFixture(), testutil.NewFakeStage())

	_, err := svc.Copy(context.Background(), domain.SyncGroup{
		Name:      "none",
		SourceRef: "src",
		Selector:  domain.Selector{Pattern: `.*\.rs$`},
	})
	assert.ErrorIs(t, err, domain.ErrNoFilesMatched)
}

func TestSync_Copy_InvalidSelector(t *testing.T) {
	svc := NewSyncService(mirrorFixture(), testutil.NewFakeStage())

	_, err := svc.Copy(context.Background(), domain.SyncGroup{Name: "empty"})
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)

	_, err = svc.Copy(context.Background(), domain.SyncGroup{
		Name:     "both",
		Selector: domain.Selector{Names: []string{"a"}, Pattern: ".*"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)

	_, err = svc.Copy(context.Background(), domain.SyncGroup{
		Name:     "malformed",
		Selector: domain.Selector{Pattern: `([`},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)
}

func TestSync_CopyAll_DeclaredOrder(t *testing.T) {
	mirror := testutil.NewFakeMirror(map[string][]byte{
		"first/common.py":  []byte("first"),
		"second/common.py": []byte("second"),
	})
	stage := testutil.NewFakeStage()
	svc := NewSyncService(mirror, stage)

	results, err := svc.CopyAll(context.Background(), []domain.SyncGroup{
		{Name: "first", SourceRef: "first", Selector: domain.Selector{Pattern: `.*\.py$`}},
		{Name: "second", SourceRef: "second", Selector: domain.Selector{Pattern: `.*\.py$`}},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Later groups win on overlapping destinations.
	assert.Equal(t, []byte("second"), stage.Objects["common.py"])
}

func TestSync_Resync_RefreshesBeforeCopy(t *testing.T) {
	mirror := mirrorFixture()
	stage := testutil.NewFakeStage()
	svc := NewSyncService(mirror, stage)

	_, err := svc.Resync(context.Background(), []domain.SyncGroup{
		{Name: "root", Selector: domain.Selector{Names: []string{"home.py"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mirror.Refreshed)
}
