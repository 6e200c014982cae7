// Package gitmirror maintains a read-only local mirror of the remote
// application repository, pinned to one branch and scoped to an
// allow-listed origin.
package gitmirror

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"eval-workbench/internal/config"
	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

const remoteName = "origin"

type Mirror struct {
	repo   *git.Repository
	branch string
	url    string
}

var _ ports.RepositoryMirror = (*Mirror)(nil)

// New binds the mirror: the remote URL must match an allow-listed origin
// prefix, a deliberate boundary against repurposing the provisioner to
// mirror arbitrary sources. An existing clone in the cache dir is reused;
// otherwise the tracked branch is cloned fresh.
func New(ctx context.Context, cfg *config.RepositoryConfig) (*Mirror, error) {
	if !originAllowed(cfg.RemoteURL, cfg.OriginAllowlist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrOriginNotAllowed, cfg.RemoteURL)
	}

	repo, err := git.PlainOpen(cfg.CacheDir)
	switch {
	case err == nil:
		if err := checkRemote(repo, cfg.RemoteURL); err != nil {
			return nil, err
		}
	case errors.Is(err, git.ErrRepositoryNotExists):
		repo, err = git.PlainCloneContext(ctx, cfg.CacheDir, false, &git.CloneOptions{
			URL:           cfg.RemoteURL,
			ReferenceName: plumbing.NewBranchReferenceName(cfg.Branch),
			SingleBranch:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("clone %s: %w", cfg.RemoteURL, err)
		}
	default:
		return nil, fmt.Errorf("open mirror cache: %w", err)
	}

	return &Mirror{repo: repo, branch: cfg.Branch, url: cfg.RemoteURL}, nil
}

// Refresh fetches the tracked branch and hard-resets the worktree to the
// remote head. The mirror never auto-updates; staleness is the caller's
// responsibility.
func (m *Mirror) Refresh(ctx context.Context) error {
	err := m.repo.FetchContext(ctx, &git.FetchOptions{RemoteName: remoteName})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("fetch %s: %w", m.url, err)
	}

	ref, err := m.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, m.branch), true)
	if err != nil {
		return fmt.Errorf("resolve %s/%s: %w", remoteName, m.branch, err)
	}

	wt, err := m.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.Reset(&git.ResetOptions{Mode: git.HardReset, Commit: ref.Hash()}); err != nil {
		return fmt.Errorf("reset worktree to %s: %w", ref.Hash(), err)
	}
	return nil
}

// List enumerates worktree files under subdir, returning slash-separated
// paths relative to subdir.
func (m *Mirror) List(_ context.Context, subdir string) ([]string, error) {
	wt, err := m.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	root := path.Clean("/" + subdir)[1:]
	if root == "" {
		root = "."
	}

	var files []string
	if err := walkFiles(wt.Filesystem, root, "", &files); err != nil {
		return nil, fmt.Errorf("list mirror files under %q: %w", subdir, err)
	}
	return files, nil
}

func (m *Mirror) Open(_ context.Context, filePath string) ([]byte, error) {
	wt, err := m.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	data, err := util.ReadFile(wt.Filesystem, filePath)
	if err != nil {
		return nil, fmt.Errorf("read mirror file %s: %w", filePath, err)
	}
	return data, nil
}

func walkFiles(fs billy.Filesystem, dir, rel string, out *[]string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}
		childAbs := path.Join(dir, entry.Name())
		childRel := path.Join(rel, entry.Name())
		if entry.IsDir() {
			if err := walkFiles(fs, childAbs, childRel, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, childRel)
	}
	return nil
}

func checkRemote(repo *git.Repository, url string) error {
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return fmt.Errorf("%w: cache has no %s remote", domain.ErrMirrorNotBound, remoteName)
	}
	for _, u := range remote.Config().URLs {
		if u == url {
			return nil
		}
	}
	return fmt.Errorf("%w: cache tracks a different remote", domain.ErrMirrorNotBound)
}

func originAllowed(url string, allowlist []string) bool {
	for _, prefix := range allowlist {
		if prefix != "" && strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}
