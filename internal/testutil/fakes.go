package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// FakeStage is an in-memory StageStore for exercising copy/delete
// semantics byte-for-byte without an object store.
type FakeStage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// FailPut / FailRemove simulate an unreachable or write-protected store.
	FailPut    error
	FailRemove error
}

func NewFakeStage() *FakeStage {
	return &FakeStage{Objects: make(map[string][]byte)}
}

func (f *FakeStage) EnsureBucket(_ context.Context, _ domain.ResourceDescriptor) error {
	return nil
}

func (f *FakeStage) Put(_ context.Context, key string, data []byte) error {
	if f.FailPut != nil {
		return f.FailPut
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[key] = append([]byte(nil), data...)
	return nil
}

func (f *FakeStage) Remove(_ context.Context, key string) (bool, error) {
	if f.FailRemove != nil {
		return false, f.FailRemove
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Objects[key]; !ok {
		return false, nil
	}
	delete(f.Objects, key)
	return true, nil
}

func (f *FakeStage) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.Objects[key]
	return ok, nil
}

func (f *FakeStage) List(_ context.Context, prefix string) ([]ports.StageObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	var out []ports.StageObject
	for key, data := range f.Objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, ports.StageObject{Key: key, Size: int64(len(data))})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (f *FakeStage) Ping(_ context.Context) error { return nil }

// FakeMirror is an in-memory RepositoryMirror holding a fixed file tree.
type FakeMirror struct {
	// Files maps mirror-relative paths to contents.
	Files     map[string][]byte
	Refreshed int
	FailFetch error
}

func NewFakeMirror(files map[string][]byte) *FakeMirror {
	return &FakeMirror{Files: files}
}

func (f *FakeMirror) Refresh(_ context.Context) error {
	if f.FailFetch != nil {
		return f.FailFetch
	}
	f.Refreshed++
	return nil
}

func (f *FakeMirror) List(_ context.Context, subdir string) ([]string, error) {
	prefix := ""
	if subdir != "" {
		prefix = strings.TrimSuffix(subdir, "/") + "/"
	}
	var out []string
	for path := range f.Files {
		if strings.HasPrefix(path, prefix) {
			out = append(out, strings.TrimPrefix(path, prefix))
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *FakeMirror) Open(_ context.Context, path string) ([]byte, error) {
	data, ok := f.Files[path]
	if !ok {
		return nil, fmt.Errorf("mirror file %s does not exist", path)
	}
	return data, nil
}
