package gfx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCompilerRoundTrip(t *testing.T) {
	b := newStub()

	prog, err := NewSourceCompiler(b).Compile([]StageSource{
		{Stage: StageVertex, Source: goodVertexSrc},
		{Stage: StageFragment, Source: goodFragmentSrc},
	})
	require.NoError(t, err)
	assert.NotEqual(t, NoObject, prog.ID())

	// The program retains the compiled stages, so both intermediate
	// shaders are released before Compile returns.
	assert.Len(t, b.deletedShaders, 2)
	assert.Equal(t, []Stage{StageVertex, StageFragment}, b.createdStages)
}

func TestSourceCompilerFailFast(t *testing.T) {
	b := newStub()
	const badFirst = "bad vertex"
	const badSecond = "bad fragment"
	b.failLogs[badFirst] = []byte("error in vertex\x00")
	b.failLogs[badSecond] = []byte("error in fragment\x00")

	_, err := NewSourceCompiler(b).Compile([]StageSource{
		{Stage: StageVertex, Source: badFirst},
		{Stage: StageFragment, Source: badSecond},
	})

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, StageVertex, ce.Stage)
	assert.Equal(t, "error in vertex", ce.Log)
	assert.Contains(t, err.Error(), "shader 0")

	// The second entry is never attempted.
	assert.Equal(t, []Stage{StageVertex}, b.createdStages)
	assert.Len(t, b.compileCalls, 1)
	assert.Empty(t, b.linkCalls)
}

func TestSourceCompilerLinkFailure(t *testing.T) {
	b := newStub()

	// A fragment shader alone compiles fine but cannot form a pipeline.
	_, err := NewSourceCompiler(b).Compile([]StageSource{
		{Stage: StageFragment, Source: goodFragmentSrc},
	})

	var le *LinkError
	require.ErrorAs(t, err, &le)

	// The compiled shader is still released on the failure path.
	assert.Len(t, b.deletedShaders, 1)
}

func TestSourceCompilerAllowsDuplicateStages(t *testing.T) {
	b := newStub()

	// Two vertex entries are not rejected up front; the driver decides at
	// link time. The stub links only complete pipelines, so this surfaces
	// as a LinkError rather than a validation error.
	_, err := NewSourceCompiler(b).Compile([]StageSource{
		{Stage: StageVertex, Source: goodVertexSrc},
		{Stage: StageVertex, Source: goodVertexSrc},
	})

	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, []Stage{StageVertex, StageVertex}, b.createdStages)
}

func TestSourceCompilerEmptyRequest(t *testing.T) {
	b := newStub()

	_, err := NewSourceCompiler(b).Compile(nil)

	// "Link with no stages attached" is a normal link failure.
	var le *LinkError
	require.ErrorAs(t, err, &le)
}

func writeShaderFiles(t *testing.T) (vertPath, fragPath string) {
	t.Helper()
	dir := t.TempDir()
	vertPath = filepath.Join(dir, "tri.vert")
	fragPath = filepath.Join(dir, "tri.frag")
	require.NoError(t, os.WriteFile(vertPath, []byte(goodVertexSrc), 0o644))
	require.NoError(t, os.WriteFile(fragPath, []byte(goodFragmentSrc), 0o644))
	return vertPath, fragPath
}

func TestFileCompiler(t *testing.T) {
	b := newStub()
	vertPath, fragPath := writeShaderFiles(t)

	prog, err := NewFileCompiler(b).Compile([]StageFile{
		{Stage: StageVertex, Path: vertPath},
		{Stage: StageFragment, Path: fragPath},
	})
	require.NoError(t, err)
	assert.NotEqual(t, NoObject, prog.ID())
}

func TestFileCompilerMissingFile(t *testing.T) {
	b := newStub()

	_, err := NewFileCompiler(b).Compile([]StageFile{
		{Stage: StageVertex, Path: filepath.Join(t.TempDir(), "absent.vert")},
	})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "vertex")

	// Nothing reaches the driver when a file cannot be read.
	assert.Empty(t, b.createdStages)
}
