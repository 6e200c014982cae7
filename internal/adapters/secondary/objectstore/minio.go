// Package objectstore implements the stage on an S3-compatible object
// store via the MinIO client.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eval-workbench/internal/config"
	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// descriptorKey is where the stage's own resource descriptor is stored.
// It is invisible to stage listings.
const descriptorKey = ".eval-workbench/descriptor.json"

type Store struct {
	client *minio.Client
	bucket string
}

func New(cfg *config.ObjectStoreConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// NewWithClient is used by tests and alternate wiring.
func NewWithClient(client *minio.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

var _ ports.StageStore = (*Store)(nil)

func (s *Store) EnsureBucket(ctx context.Context, desc domain.ResourceDescriptor) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}

	// Stamping overwrites only the descriptor object; existing stage
	// contents are never touched on a repeat run.
	if err := s.Put(ctx, descriptorKey, []byte(desc.JSON())); err != nil {
		return fmt.Errorf("stamp descriptor on bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) (bool, error) {
	// RemoveObject succeeds silently on a missing key, so stat first to
	// keep the missing-object case distinguishable from a real removal.
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat object %s: %w", key, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, fmt.Errorf("remove object %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat object %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]ports.StageObject, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var objects []ports.StageObject
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, info.Err)
		}
		if info.Key == descriptorKey || strings.HasPrefix(info.Key, ".eval-workbench/") {
			continue
		}
		objects = append(objects, ports.StageObject{Key: info.Key, Size: info.Size})
	}
	return objects, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("ping object store: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
