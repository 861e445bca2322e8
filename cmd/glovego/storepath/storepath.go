// Package storepath resolves CLI path arguments to blob stores.
//
// Plain paths map to the local file system. Remote artifacts use URL
// schemes:
//
//	s3://bucket/key            Amazon S3 (credentials from the AWS default chain)
//	minio://host/bucket/key    MinIO (credentials from MINIO_ACCESS_KEY / MINIO_SECRET_KEY)
package storepath

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/glovego/blobstore"
	minioblob "github.com/hupe1980/glovego/blobstore/minio"
	s3blob "github.com/hupe1980/glovego/blobstore/s3"
	"github.com/hupe1980/glovego/corpus"
)

// Resolve maps a path argument to a blob store and the blob name within it.
func Resolve(ctx context.Context, raw string) (blobstore.Store, string, error) {
	switch {
	case strings.HasPrefix(raw, "s3://"):
		return resolveS3(ctx, strings.TrimPrefix(raw, "s3://"))
	case strings.HasPrefix(raw, "minio://"):
		return resolveMinio(strings.TrimPrefix(raw, "minio://"))
	default:
		dir := filepath.Dir(raw)
		return blobstore.NewLocalStore(dir), filepath.Base(raw), nil
	}
}

func resolveS3(ctx context.Context, rest string) (blobstore.Store, string, error) {
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, "", fmt.Errorf("invalid s3 path %q, expected s3://bucket/key", "s3://"+rest)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("loading aws config: %w", err)
	}

	client := awss3.NewFromConfig(cfg)
	return s3blob.NewStore(client, bucket, ""), key, nil
}

func resolveMinio(rest string) (blobstore.Store, string, error) {
	endpoint, rest, ok := strings.Cut(rest, "/")
	if !ok || endpoint == "" {
		return nil, "", fmt.Errorf("invalid minio path, expected minio://host/bucket/key")
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, "", fmt.Errorf("invalid minio path, expected minio://host/bucket/key")
	}

	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  credentials.NewEnvMinio(),
		Secure: os.Getenv("MINIO_INSECURE") == "",
	})
	if err != nil {
		return nil, "", fmt.Errorf("creating minio client: %w", err)
	}

	return minioblob.NewStore(client, bucket, ""), key, nil
}

// Open opens a blob for reading, decompressing by filename extension.
// The returned closer closes both the decompressor and the blob.
func Open(ctx context.Context, store blobstore.Store, name string) (io.ReadCloser, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	dec, err := corpus.Decompress(rc, name)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &readCloser{ReadCloser: dec, underlying: rc}, nil
}

// Write creates a blob, compressing by filename extension, and streams
// write's output into it.
func Write(ctx context.Context, store blobstore.Store, name string, write func(io.Writer) error) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	enc, err := corpus.Compress(blob, name)
	if err != nil {
		_ = blob.Close()
		return err
	}

	if err := write(enc); err != nil {
		_ = enc.Close()
		_ = blob.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = blob.Close()
		return err
	}
	return blob.Close()
}

type readCloser struct {
	io.ReadCloser
	underlying io.Closer
}

func (r *readCloser) Close() error {
	err := r.ReadCloser.Close()
	if uerr := r.underlying.Close(); err == nil {
		err = uerr
	}
	return err
}
