package gfx

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, b *stubBinding) (*WatchingCompiler, string, string) {
	t.Helper()
	vertPath, fragPath := writeShaderFiles(t)
	w, err := WatchFiles(b, []StageFile{
		{Stage: StageVertex, Path: vertPath},
		{Stage: StageFragment, Path: fragPath},
	})
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w, vertPath, fragPath
}

func TestWatchFilesInitialCompile(t *testing.T) {
	b := newStub()
	w, _, _ := startWatcher(t, b)

	require.NotNil(t, w.Current())
	assert.NotEqual(t, NoObject, w.Current().ID())

	// No edits yet: Poll keeps the current program.
	prog, swapped, err := w.Poll()
	require.NoError(t, err)
	assert.False(t, swapped)
	assert.Same(t, w.Current(), prog)
}

func TestWatchFilesMissingFile(t *testing.T) {
	b := newStub()

	_, err := WatchFiles(b, []StageFile{
		{Stage: StageVertex, Path: "does/not/exist.vert"},
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherRecompilesOnDirty(t *testing.T) {
	b := newStub()
	w, _, _ := startWatcher(t, b)
	old := w.Current()
	oldHandle := old.ID()

	w.dirty.Store(true)
	prog, swapped, err := w.Poll()
	require.NoError(t, err)
	assert.True(t, swapped)
	assert.NotSame(t, old, prog)
	assert.Same(t, prog, w.Current())

	// The replaced program is destroyed exactly once.
	assert.Equal(t, 1, deleteCount(b.deletedPrograms, oldHandle))
}

func TestWatcherKeepsOldProgramOnFailure(t *testing.T) {
	b := newStub()
	w, vertPath, _ := startWatcher(t, b)
	old := w.Current()

	const broken = "void main( {"
	b.failLogs[broken] = []byte("syntax error\x00")
	require.NoError(t, os.WriteFile(vertPath, []byte(broken), 0o644))

	w.dirty.Store(true)
	prog, swapped, err := w.Poll()

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.False(t, swapped)
	assert.Same(t, old, prog)
	assert.Same(t, old, w.Current())
	assert.Empty(t, b.deletedPrograms)
}

func TestWatcherSeesFileWrites(t *testing.T) {
	b := newStub()
	w, _, fragPath := startWatcher(t, b)

	require.NoError(t, os.WriteFile(fragPath, []byte(goodFragmentSrc+"\n// edited\n"), 0o644))

	assert.Eventually(t, func() bool {
		return w.dirty.Load()
	}, 2*time.Second, 10*time.Millisecond, "write event never marked the watcher dirty")
}
