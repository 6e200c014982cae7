//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eval-workbench/internal/core/domain"
)

// Run with: go test -tags integration ./internal/adapters/secondary/postgres/
// TEST_DATABASE_URL must point at a throwaway database.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestEnsureTable_ReconcileLive(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	schema := fmt.Sprintf("reconcile_test_%d", time.Now().UnixNano())
	mgr := NewSchemaManager(pool, schema)
	t.Cleanup(func() {
		pool.Exec(ctx, fmt.Sprintf(`DROP SCHEMA IF EXISTS %q CASCADE`, schema))
	})

	desc := domain.ResourceDescriptor{
		Origin:  "eval_workbench",
		Name:    "provisioner",
		Version: domain.DescriptorVersion{Major: 1},
	}
	require.NoError(t, mgr.EnsureSchema(ctx, desc))

	v1 := domain.TableSpec{Name: "widgets", Columns: []domain.Column{
		{Name: "name", Type: "TEXT PRIMARY KEY"},
		{Name: "legacy", Type: "TEXT"},
	}}
	require.NoError(t, mgr.EnsureTable(ctx, v1, desc))

	_, err := pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %q.widgets (name, legacy) VALUES ('w1', 'old')`, schema))
	require.NoError(t, err)

	// Reconcile: add one column, drop one.
	v2 := domain.TableSpec{Name: "widgets", Columns: []domain.Column{
		{Name: "name", Type: "TEXT PRIMARY KEY"},
		{Name: "weight", Type: "INT NOT NULL DEFAULT 0"},
	}}
	require.NoError(t, mgr.EnsureTable(ctx, v2, desc))

	// The surviving column's value is preserved; the added column takes its
	// default; the dropped column is gone.
	var name string
	var weight int
	err = pool.QueryRow(ctx, fmt.Sprintf(`SELECT name, weight FROM %q.widgets`, schema)).Scan(&name, &weight)
	require.NoError(t, err)
	assert.Equal(t, "w1", name)
	assert.Equal(t, 0, weight)

	var hasLegacy bool
	err = pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = $1 AND table_name = 'widgets' AND column_name = 'legacy'
		)
	`, schema).Scan(&hasLegacy)
	require.NoError(t, err)
	assert.False(t, hasLegacy)
}
