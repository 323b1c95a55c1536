package gfx

import (
	"fmt"
	"os"
)

// StageSource pairs a pipeline stage with GLSL source text.
type StageSource struct {
	Stage  Stage
	Source string
}

// SourceCompiler builds a linked Program from in-memory GLSL sources.
type SourceCompiler struct {
	b Binding
}

func NewSourceCompiler(b Binding) *SourceCompiler {
	return &SourceCompiler{b: b}
}

// Compile compiles every source and links the results in order. It is
// fail-fast: the first shader that fails to compile aborts the run and later
// entries are never attempted. All intermediate shaders are destroyed before
// returning, on success and failure alike; a linked program retains its
// compiled stages.
//
// Duplicate stages are not rejected; the driver decides what a second shader
// of the same stage means at link time.
func (c *SourceCompiler) Compile(sources []StageSource) (*Program, error) {
	shaders := make([]*Shader, 0, len(sources))
	defer func() {
		for _, sh := range shaders {
			sh.Destroy()
		}
	}()

	for i, src := range sources {
		sh, err := NewShader(c.b, src.Stage, src.Source)
		if err != nil {
			return nil, fmt.Errorf("shader %d (%s): %w", i, src.Stage, err)
		}
		shaders = append(shaders, sh)
	}

	return LinkProgram(c.b, shaders...)
}

// StageFile pairs a pipeline stage with a path to a GLSL source file.
type StageFile struct {
	Stage Stage
	Path  string
}

// FileCompiler builds a linked Program from GLSL source files.
type FileCompiler struct {
	b Binding
}

func NewFileCompiler(b Binding) *FileCompiler {
	return &FileCompiler{b: b}
}

// Compile reads every file and hands the sources to a SourceCompiler. Reading
// is fail-fast as well, so compilation starts only once every file loaded.
func (c *FileCompiler) Compile(files []StageFile) (*Program, error) {
	sources := make([]StageSource, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s shader: %w", f.Stage, err)
		}
		sources = append(sources, StageSource{Stage: f.Stage, Source: string(b)})
	}
	return NewSourceCompiler(c.b).Compile(sources)
}
