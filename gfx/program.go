package gfx

// Program owns a linked pipeline object. Once LinkProgram succeeds the handle
// refers to a validly linked pipeline until Destroy is called.
type Program struct {
	b         Binding
	handle    Handle
	locations map[string]int32
}

// LinkProgram creates a program object, attaches the shaders in order, links,
// and checks the link status. The input shaders are neither detached nor
// destroyed; after a successful link the program retains the compiled stages,
// so the caller may destroy the shaders immediately.
//
// Linking zero shaders is not rejected here; the driver reports it as a
// normal link failure.
func LinkProgram(b Binding, shaders ...*Shader) (*Program, error) {
	handle := b.CreateProgram()
	for _, sh := range shaders {
		b.AttachShader(handle, sh.ID())
	}
	b.LinkProgram(handle)

	if !b.ProgramLinkStatus(handle) {
		log, err := decodeInfoLog(b.ProgramInfoLog(handle))
		b.UseProgram(NoObject)
		b.DeleteProgram(handle)
		if err != nil {
			return nil, err
		}
		return nil, &LinkError{Log: log}
	}

	return &Program{b: b, handle: handle, locations: map[string]int32{}}, nil
}

// ID returns the underlying GPU handle.
func (p *Program) ID() Handle { return p.handle }

// Activate binds this program for subsequent draw calls. Idempotent.
func (p *Program) Activate() {
	p.b.UseProgram(p.handle)
}

// Deactivate clears the context's active-program slot.
//
// Caution: the slot is global to the context. Deactivate clears it
// unconditionally, even when a different program is the one currently bound.
// Idempotent.
func (p *Program) Deactivate() {
	p.b.UseProgram(NoObject)
}

// UniformLocation returns the location of a named active uniform, or -1 if
// the program has none by that name. Locations are cached per program.
func (p *Program) UniformLocation(name string) int32 {
	loc, ok := p.locations[name]
	if !ok {
		loc = p.b.UniformLocation(p.handle, name)
		p.locations[name] = loc
	}
	return loc
}

// Destroy deactivates, then releases the GPU object, so no draw call can
// reference a half-destroyed program. Safe to call more than once; only the
// first call releases. The Deactivate caveat applies here too: destroying any
// Program clears the active-program slot.
func (p *Program) Destroy() {
	if p.handle == NoObject {
		return
	}
	p.Deactivate()
	p.b.DeleteProgram(p.handle)
	p.handle = NoObject
}
