// Package glbinding implements gfx.Binding on top of the go-gl bindings.
// Everything that touches driver pointers (gl.Strs, raw log buffers) lives
// here, so the rest of the module never sees the unsafe contract.
package glbinding

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ruipserra/learn-opengl/gfx"
)

// Stage enums missing from the 3.3 core constants; values are from the GL
// spec and only reach the driver when the context actually supports them.
const (
	tessControlShader    uint32 = 0x8E88
	tessEvaluationShader uint32 = 0x8E87
	computeShader        uint32 = 0x91B9
)

// Binding talks to the current GL context. It is stateless; a valid context
// must be current on the calling thread (see platform.New).
type Binding struct{}

// New returns a Binding for the current context.
func New() Binding { return Binding{} }

func stageEnum(s gfx.Stage) uint32 {
	switch s {
	case gfx.StageVertex:
		return gl.VERTEX_SHADER
	case gfx.StageFragment:
		return gl.FRAGMENT_SHADER
	case gfx.StageGeometry:
		return gl.GEOMETRY_SHADER
	case gfx.StageTessControl:
		return tessControlShader
	case gfx.StageTessEvaluation:
		return tessEvaluationShader
	case gfx.StageCompute:
		return computeShader
	default:
		return 0
	}
}

func (Binding) CreateShader(stage gfx.Stage) gfx.Handle {
	return gfx.Handle(gl.CreateShader(stageEnum(stage)))
}

func (Binding) ShaderSource(shader gfx.Handle, src string) {
	// gfx guarantees src has no interior NUL; gl.Strs wants termination.
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csrc, nil)
}

func (Binding) CompileShader(shader gfx.Handle) {
	gl.CompileShader(uint32(shader))
}

func (Binding) ShaderCompileStatus(shader gfx.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Binding) ShaderInfoLog(shader gfx.Handle) []byte {
	var logLen int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return nil
	}
	buf := make([]byte, logLen)
	gl.GetShaderInfoLog(uint32(shader), logLen, nil, &buf[0])
	return buf
}

func (Binding) DeleteShader(shader gfx.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (Binding) CreateProgram() gfx.Handle {
	return gfx.Handle(gl.CreateProgram())
}

func (Binding) AttachShader(program, shader gfx.Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (Binding) LinkProgram(program gfx.Handle) {
	gl.LinkProgram(uint32(program))
}

func (Binding) ProgramLinkStatus(program gfx.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Binding) ProgramInfoLog(program gfx.Handle) []byte {
	var logLen int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return nil
	}
	buf := make([]byte, logLen)
	gl.GetProgramInfoLog(uint32(program), logLen, nil, &buf[0])
	return buf
}

func (Binding) DeleteProgram(program gfx.Handle) {
	gl.DeleteProgram(uint32(program))
}

func (Binding) UseProgram(program gfx.Handle) {
	gl.UseProgram(uint32(program))
}

func (Binding) UniformLocation(program gfx.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (Binding) GetError() uint32 {
	return gl.GetError()
}
