package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"flowdeck/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_LoadMirrorsSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "export {}")
	writeFile(t, root, "src/deep/b.tsx", "export {}")
	writeFile(t, root, "README.md", "not a source file")
	writeFile(t, root, ".git/config", "skipped directory")

	store := memory.NewStateStore()
	w := NewWatcher(root, "agent", store, zap.NewNop())

	require.NoError(t, w.Load(context.Background()))

	files, err := store.LoadFiles(context.Background(), "agent")
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Paths are root-relative with forward slashes.
	assert.Contains(t, files, "src/a.ts")
	assert.Contains(t, files, "src/deep/b.tsx")
	assert.Equal(t, "export {}", files["src/a.ts"].Content)
}

func TestWatcher_LoadEmptyWorkspace(t *testing.T) {
	store := memory.NewStateStore()
	w := NewWatcher(t.TempDir(), "agent", store, zap.NewNop())

	require.NoError(t, w.Load(context.Background()))

	files, err := store.LoadFiles(context.Background(), "agent")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWatcher_LoadReplacesPreviousSet(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.ts", "one")
	store := memory.NewStateStore()
	w := NewWatcher(root, "agent", store, zap.NewNop())
	require.NoError(t, w.Load(context.Background()))

	require.NoError(t, os.Remove(filepath.Join(root, "a.ts")))
	writeFile(t, root, "b.ts", "two")
	require.NoError(t, w.Load(context.Background()))

	files, err := store.LoadFiles(context.Background(), "agent")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files, "b.ts")
}
