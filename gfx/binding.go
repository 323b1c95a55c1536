package gfx

// Binding is the graphics context capability the core compiles against.
// The real implementation lives in gfx/gl and talks to the driver through
// go-gl; tests substitute an in-memory stub. Every method must be called on
// the thread that owns the current context.
//
// Info logs are returned as the raw bytes handed back by the driver,
// including any trailing NUL padding; callers validate and trim them.
type Binding interface {
	CreateShader(stage Stage) Handle
	ShaderSource(shader Handle, src string)
	CompileShader(shader Handle)
	ShaderCompileStatus(shader Handle) bool
	ShaderInfoLog(shader Handle) []byte
	DeleteShader(shader Handle)

	CreateProgram() Handle
	AttachShader(program, shader Handle)
	LinkProgram(program Handle)
	ProgramLinkStatus(program Handle) bool
	ProgramInfoLog(program Handle) []byte
	DeleteProgram(program Handle)

	// UseProgram binds program for subsequent draw calls. UseProgram(NoObject)
	// clears the binding.
	UseProgram(program Handle)

	// UniformLocation returns the location of a named uniform in a linked
	// program, or -1 if the name is not an active uniform.
	UniformLocation(program Handle, name string) int32

	// GetError pops the oldest error code recorded by the context, or 0.
	GetError() uint32
}
