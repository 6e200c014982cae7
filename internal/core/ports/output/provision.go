package ports

import (
	"context"

	"eval-workbench/internal/core/domain"
)

// SchemaManager brings relational resources into existence idempotently
// and stamps each with the owning descriptor.
type SchemaManager interface {
	// EnsureSchema creates the namespace if absent. Re-running against an
	// existing schema is a no-op; a schema is never dropped.
	EnsureSchema(ctx context.Context, desc domain.ResourceDescriptor) error
	// EnsureTable creates the table if absent, otherwise reconciles the
	// live column set to match the spec (add missing, drop undeclared).
	EnsureTable(ctx context.Context, spec domain.TableSpec, desc domain.ResourceDescriptor) error
}
