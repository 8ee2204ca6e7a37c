package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aolabi/docpipe/internal/common"
)

// ObjectStorage is the blob-store surface the pipeline needs. Keys are
// deterministic, so a redelivered task overwrites rather than duplicates.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Bucket() string
}

type minioStorage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func NewMinioStorage(cfg MinioConfig, logger *slog.Logger) (ObjectStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, common.NewAppError("STORAGE_CONFIG", "invalid object store configuration", err)
	}
	return &minioStorage{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

// EnsureBucket creates the bucket if missing. Concurrent callers may race
// the creation; "already exists" answers count as success.
func (s *minioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "BucketAlreadyOwnedByYou" || resp.Code == "BucketAlreadyExists" {
			return nil
		}
		return mapMinioErr(err)
	}
	s.logger.Info("bucket created", "bucket", s.bucket)
	return nil
}

func (s *minioStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("object put failed", "bucket", s.bucket, "key", key, "error", err)
		return mapMinioErr(err)
	}
	s.logger.Debug("object stored", "bucket", s.bucket, "key", key, "bytes", len(data))
	return nil
}

func (s *minioStorage) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	defer obj.Close()

	// GetObject is lazy; read errors surface here, including NoSuchKey.
	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Error("object read failed", "bucket", s.bucket, "key", key, "error", err)
		return nil, mapMinioErr(err)
	}
	return data, nil
}

func (s *minioStorage) Bucket() string {
	return s.bucket
}

// mapMinioErr folds MinIO errors into the shared taxonomy: missing objects
// are ErrNotFound (terminal for reads), everything else is transient.
func mapMinioErr(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return common.NewAppError("OBJECT_NOT_FOUND", "object not found", common.ErrNotFound)
	default:
		return common.NewAppError("STORAGE_UNAVAILABLE", err.Error(), common.ErrUnavailable)
	}
}
