package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
	}{
		{"resume.pdf", ".pdf"},
		{"Resume.PDF", ".pdf"},
		{"../../etc/passwd", ""},
		{"cv.final.docx", ".docx"},
		{"", ""},
		{"cv.", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			key := ObjectKey(tt.filename)

			assert.True(t, strings.HasSuffix(key, tt.wantExt))
			assert.NotContains(t, key, "/")
			assert.Len(t, key, 36+len(tt.wantExt))
		})
	}
	assert.NotEqual(t, ObjectKey("a.pdf"), ObjectKey("a.pdf"))
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc.pdf", []byte("%PDF-1.4"), "application/pdf"))

	data, err := store.Load(ctx, "abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	require.NoError(t, store.Delete(ctx, "abc.pdf"))
	_, err = os.Stat(filepath.Join(dir, "abc.pdf"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, "abc.pdf"), "deleting a missing file is not an error")
}

func TestLocalStoreKeepsKeysInsideDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "../escape.pdf", []byte("x"), ""))

	_, err = os.Stat(filepath.Join(dir, "escape.pdf"))
	assert.NoError(t, err)
}

func TestLocalStoreLoadMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nope.pdf")

	assert.Error(t, err)
}
