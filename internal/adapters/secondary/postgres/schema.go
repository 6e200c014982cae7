package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

type schemaManager struct {
	pool   *pgxpool.Pool
	schema string
}

// NewSchemaManager creates the resource declaration layer for relational
// objects. All tables are created inside the configured schema.
func NewSchemaManager(pool *pgxpool.Pool, schema string) ports.SchemaManager {
	return &schemaManager{pool: pool, schema: schema}
}

func (m *schemaManager) EnsureSchema(ctx context.Context, desc domain.ResourceDescriptor) error {
	ident := pgx.Identifier{m.schema}.Sanitize()

	// Containers are create-if-absent: accidental destruction must never
	// happen on a repeat run.
	if _, err := m.pool.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, ident)); err != nil {
		return fmt.Errorf("create schema %s: %w", m.schema, err)
	}
	if err := m.stamp(ctx, "SCHEMA", ident, desc); err != nil {
		return err
	}
	return nil
}

func (m *schemaManager) EnsureTable(ctx context.Context, spec domain.TableSpec, desc domain.ResourceDescriptor) error {
	if len(spec.Columns) == 0 {
		return domain.ErrInvalidTableSpec
	}

	exists, err := m.tableExists(ctx, spec.Name)
	if err != nil {
		return err
	}

	ident := pgx.Identifier{m.schema, spec.Name}.Sanitize()

	if !exists {
		cols := make([]string, len(spec.Columns))
		for i, c := range spec.Columns {
			cols[i] = fmt.Sprintf("%s %s", pgx.Identifier{c.Name}.Sanitize(), c.Type)
		}
		ddl := fmt.Sprintf(`CREATE TABLE %s (%s)`, ident, strings.Join(cols, ", "))
		if _, err := m.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		return m.stamp(ctx, "TABLE", ident, desc)
	}

	// Tables track schema evolution: reconcile the live column set against
	// the declared one. Adding preserves existing rows; dropping a column
	// no longer declared is destructive by design.
	existing, err := m.tableColumns(ctx, spec.Name)
	if err != nil {
		return err
	}

	toAdd, toDrop := planColumnChanges(spec, existing)
	for _, c := range toAdd {
		ddl := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, ident, pgx.Identifier{c.Name}.Sanitize(), c.Type)
		if _, err := m.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", spec.Name, c.Name, err)
		}
	}
	for _, name := range toDrop {
		ddl := fmt.Sprintf(`ALTER TABLE %s DROP COLUMN %s`, ident, pgx.Identifier{name}.Sanitize())
		if _, err := m.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("drop column %s.%s: %w", spec.Name, name, err)
		}
	}

	return m.stamp(ctx, "TABLE", ident, desc)
}

func (m *schemaManager) tableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := m.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)
	`, m.schema, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return exists, nil
}

func (m *schemaManager) tableColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := m.pool.Query(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`, m.schema, table)
	if err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// stamp attaches the descriptor document to an owned object. COMMENT takes
// no bind parameters, so the literal is escaped by hand.
func (m *schemaManager) stamp(ctx context.Context, kind, ident string, desc domain.ResourceDescriptor) error {
	literal := strings.ReplaceAll(desc.JSON(), "'", "''")
	stmt := fmt.Sprintf(`COMMENT ON %s %s IS '%s'`, kind, ident, literal)
	if _, err := m.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("stamp descriptor on %s: %w", ident, err)
	}
	return nil
}

// planColumnChanges diffs a declared column set against the live one.
func planColumnChanges(spec domain.TableSpec, existing []string) (toAdd []domain.Column, toDrop []string) {
	declared := make(map[string]bool, len(spec.Columns))
	for _, c := range spec.Columns {
		declared[c.Name] = true
	}
	live := make(map[string]bool, len(existing))
	for _, name := range existing {
		live[name] = true
	}

	for _, c := range spec.Columns {
		if !live[c.Name] {
			toAdd = append(toAdd, c)
		}
	}
	for _, name := range existing {
		if !declared[name] {
			toDrop = append(toDrop, name)
		}
	}
	return toAdd, toDrop
}
