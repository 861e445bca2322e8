// Package blobstore abstracts storage of pipeline artifacts (corpora,
// vocabularies, co-occurrence files, vector files).
//
// Artifacts are written once and read sequentially, so the Store interface
// deals in streaming readers and writers rather than random access. Local
// filesystem and in-memory implementations live here; S3 and MinIO backends
// live in their own subpackages to keep the SDK dependencies optional for
// library consumers.
package blobstore
