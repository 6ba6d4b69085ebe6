// Package minio loads documents from MinIO and other S3-compatible stores.
//
// Names have the form "bucket/key".
package minio
