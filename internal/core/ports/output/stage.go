package ports

import (
	"context"

	"eval-workbench/internal/core/domain"
)

// StageObject is one addressable blob in the stage.
type StageObject struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// StageStore is the execution-accessible object store holding application
// code and metric companion artifacts. The stage is shared state: the sync
// pipeline writes code objects, the running application writes and removes
// metric binaries. No locking is provided.
type StageStore interface {
	// EnsureBucket creates the stage container if absent and stamps the
	// descriptor. An existing bucket and its contents are never touched.
	EnsureBucket(ctx context.Context, desc domain.ResourceDescriptor) error
	Put(ctx context.Context, key string, data []byte) error
	// Remove deletes an object. A missing object is a no-op reported as
	// removed=false; only store failures return an error.
	Remove(ctx context.Context, key string) (removed bool, err error)
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]StageObject, error)
	Ping(ctx context.Context) error
}
