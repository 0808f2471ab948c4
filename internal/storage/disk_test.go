package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewDiskStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskStorage_SaveOpenRemove(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "xray-1.png", strings.NewReader("pixels"), 6, "image/png"))

	rc, err := s.Open(ctx, "xray-1.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	require.NoError(t, s.Remove(ctx, "xray-1.png"))
	_, err = s.Open(ctx, "xray-1.png")
	assert.ErrorIs(t, err, ErrNotFound)

	// second remove is a no-op
	assert.NoError(t, s.Remove(ctx, "xray-1.png"))
}

func TestDiskStorage_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "a.jpg", strings.NewReader("x"), 1, "image/jpeg"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.jpg", entries[0].Name())
}

func TestDiskStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "../etc/passwd", "a/b.png", `a\b.png`} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, s.Save(ctx, key, strings.NewReader("x"), 1, "image/png"), ErrInvalidKey)
			_, err := s.Open(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.ErrorIs(t, s.Remove(ctx, key), ErrInvalidKey)
		})
	}
}
