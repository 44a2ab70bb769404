package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore keeps uploaded resumes for the lifetime of a request (or longer,
// when retention is enabled).
type FileStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey derives a collision-free storage key for an uploaded file. Only the
// lowercased extension of the client filename is kept.
func ObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "." {
		ext = ""
	}
	return uuid.NewString() + ext
}
