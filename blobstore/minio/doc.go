// Package minio provides a blobstore.Store backed by MinIO or any
// S3-compatible object store via the MinIO Go client.
package minio
