package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T, dir string) *FileStorage {
	t.Helper()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	return storage
}

func TestFileStorage_RoundTrip(t *testing.T) {
	storage := newTestFileStorage(t, filepath.Join(t.TempDir(), "session"))
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "auth.token", "tok-123"))

	got, err := storage.Get(ctx, "auth.token")
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)
}

func TestFileStorage_MissingKey(t *testing.T) {
	storage := newTestFileStorage(t, t.TempDir())

	_, err := storage.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStorage_DeleteIsIdempotent(t *testing.T) {
	storage := newTestFileStorage(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "auth.token", "tok"))
	require.NoError(t, storage.Delete(ctx, "auth.token"))
	require.NoError(t, storage.Delete(ctx, "auth.token"))
}

func TestFileStorage_OwnerOnlyPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	storage := newTestFileStorage(t, dir)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "auth.token", "tok"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info, err := entries[0].Info()
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
