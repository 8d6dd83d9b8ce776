package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	path := util.CertificateDocumentPath(7)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Get(ctx, path)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, path, []byte("first")))
	onDisk, err := os.ReadFile(filepath.Join(root, "certificados", "certificado-7.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(onDisk))

	// overwrite in place
	require.NoError(t, s.Put(ctx, path, []byte("second")))
	data, err := s.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "certificados"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")

	require.NoError(t, s.Delete(ctx, path))
	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a file that is already gone is fine
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, p := range []string{"../outside.pdf", "/etc/passwd", "", "etiquetas/../../x.pdf"} {
		t.Run(p, func(t *testing.T) {
			assert.Error(t, s.Put(ctx, p, []byte("x")))
		})
	}
}

func TestNewStorage(t *testing.T) {
	logger := util.NewLogger("test")

	s, err := NewStorage(context.Background(), config.StorageConfig{Driver: config.StorageDriverLocal, Root: t.TempDir()}, logger)
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(context.Background(), config.StorageConfig{Driver: "ftp"}, logger)
	assert.Error(t, err)
}
