// Package s3 provides a blobstore.Store backed by Amazon S3 using the
// AWS SDK for Go v2. Streaming writes go through the transfer manager
// so large artifacts upload in parts without buffering in memory.
package s3
