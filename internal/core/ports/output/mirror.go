package ports

import "context"

// RepositoryMirror is a read-only, explicitly refreshed local copy of the
// tracked remote branch. The mirror never auto-updates; callers must
// Refresh before reading if they need the latest commit state.
type RepositoryMirror interface {
	// Refresh pulls the tracked branch to the latest remote head.
	// Already-up-to-date is success.
	Refresh(ctx context.Context) error
	// List enumerates file paths under subdir, relative to subdir.
	List(ctx context.Context, subdir string) ([]string, error)
	// Open reads one file's contents by mirror-relative path.
	Open(ctx context.Context, path string) ([]byte, error)
}
