package gfx

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
	StageTessControl
	StageTessEvaluation
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	case StageTessControl:
		return "tess-control"
	case StageTessEvaluation:
		return "tess-evaluation"
	case StageCompute:
		return "compute"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Shader owns one compiled shader-stage object. Once NewShader succeeds the
// handle refers to a valid compiled object until Destroy is called.
type Shader struct {
	b      Binding
	handle Handle
	stage  Stage
}

// NewShader compiles src as a shader for the given stage. The source must not
// contain a NUL byte; the adapter NUL-terminates it for the driver.
//
// On compile failure the driver's diagnostic log is returned verbatim in a
// *CompileError and the failed GPU object is released before returning.
func NewShader(b Binding, stage Stage, src string) (*Shader, error) {
	if strings.IndexByte(src, 0) >= 0 {
		return nil, ErrInvalidSource
	}

	handle := b.CreateShader(stage)
	b.ShaderSource(handle, src)
	b.CompileShader(handle)

	if !b.ShaderCompileStatus(handle) {
		log, err := decodeInfoLog(b.ShaderInfoLog(handle))
		b.DeleteShader(handle)
		if err != nil {
			return nil, err
		}
		return nil, &CompileError{Stage: stage, Log: log}
	}

	return &Shader{b: b, handle: handle, stage: stage}, nil
}

// ID returns the underlying GPU handle.
func (s *Shader) ID() Handle { return s.handle }

// Stage returns the pipeline stage this shader was compiled for.
func (s *Shader) Stage() Stage { return s.stage }

// Destroy releases the GPU object. Safe to call more than once; only the
// first call releases.
func (s *Shader) Destroy() {
	if s.handle == NoObject {
		return
	}
	s.b.DeleteShader(s.handle)
	s.handle = NoObject
}

// decodeInfoLog trims the driver's NUL padding and rejects logs that are not
// valid UTF-8.
func decodeInfoLog(raw []byte) (string, error) {
	raw = bytes.TrimRight(raw, "\x00")
	if !utf8.Valid(raw) {
		return "", ErrInvalidInfoLog
	}
	return string(raw), nil
}
