package interfaces

import (
	"context"
	"io"
)

// IAttachmentStore abstracts the object store holding lead attachments
// (S3 in production). Put returns the stored object key; the caller
// collects keys and persists them on the Lead row.
//
// Remove failures on delete are best-effort cleanup: orphaned blobs are an
// accepted gap, so callers log and continue.

type IAttachmentStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}
