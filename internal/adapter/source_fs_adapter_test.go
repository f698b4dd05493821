package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalSourceFSAdapter_ListFiles(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.c"), "b")
	writeTestFile(t, filepath.Join(root, "a.c"), "a")
	writeTestFile(t, filepath.Join(root, "nested", "c.c"), "c")
	writeTestFile(t, filepath.Join(root, ".hidden"), "h")
	writeTestFile(t, filepath.Join(root, ".tokens", "a.c.mp"), "x")

	files, err := adapter.ListFiles(ctx, m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.c")),
		m.Path(filepath.Join(root, "b.c")),
		m.Path(filepath.Join(root, "nested", "c.c")),
	}, files)
}

func TestLocalSourceFSAdapter_ListFilesMissingRoot(t *testing.T) {
	_, err := NewLocalSourceFSAdapter().ListFiles(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_ListFilesCancelled(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalSourceFSAdapter().ListFiles(ctx, m.Path(root))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_WriteAndRead(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	path := adapter.JoinPath(ctx, t.TempDir(), "deep", "dir", "out.bin")

	require.NoError(t, adapter.WriteFile(ctx, path, []byte("first")))
	require.NoError(t, adapter.WriteFile(ctx, path, []byte("second")))

	content, err := adapter.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)

	exists, err := adapter.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = adapter.Exists(ctx, path+".missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(ctx, "/corpus", "/corpus/nested/a.c")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("nested", "a.c")), rel)
}
