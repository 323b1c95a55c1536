package gfx

// stubBinding is an in-memory Binding that records every call so tests can
// assert ordering, fail-fast behavior and exact release counts. Compile
// results are driven by failLogs (source text -> raw log bytes); linking
// succeeds only when both a vertex and a fragment shader are attached,
// mimicking the driver's minimum pipeline requirement.
type stubBinding struct {
	next Handle

	createdStages   []Stage
	sources         map[Handle]string
	stages          map[Handle]Stage
	compileCalls    []Handle
	deletedShaders  []Handle
	failLogs        map[string][]byte
	shaderLog       []byte // overrides failLogs lookup when set
	createdPrograms []Handle
	attached        map[Handle][]Handle
	linkCalls       []Handle
	deletedPrograms []Handle
	forceLinkFail   bool
	programLog      []byte
	useCalls        []Handle
	active          Handle
	uniforms        map[string]int32
	uniformCalls    int
	errCode         uint32
}

func newStub() *stubBinding {
	return &stubBinding{
		next:     100,
		sources:  map[Handle]string{},
		stages:   map[Handle]Stage{},
		failLogs: map[string][]byte{},
		attached: map[Handle][]Handle{},
		uniforms: map[string]int32{},
	}
}

func (s *stubBinding) alloc() Handle {
	s.next++
	return s.next
}

func (s *stubBinding) CreateShader(stage Stage) Handle {
	h := s.alloc()
	s.createdStages = append(s.createdStages, stage)
	s.stages[h] = stage
	return h
}

func (s *stubBinding) ShaderSource(shader Handle, src string) {
	s.sources[shader] = src
}

func (s *stubBinding) CompileShader(shader Handle) {
	s.compileCalls = append(s.compileCalls, shader)
}

func (s *stubBinding) ShaderCompileStatus(shader Handle) bool {
	_, fails := s.failLogs[s.sources[shader]]
	return !fails
}

func (s *stubBinding) ShaderInfoLog(shader Handle) []byte {
	if s.shaderLog != nil {
		return s.shaderLog
	}
	return s.failLogs[s.sources[shader]]
}

func (s *stubBinding) DeleteShader(shader Handle) {
	s.deletedShaders = append(s.deletedShaders, shader)
}

func (s *stubBinding) CreateProgram() Handle {
	h := s.alloc()
	s.createdPrograms = append(s.createdPrograms, h)
	return h
}

func (s *stubBinding) AttachShader(program, shader Handle) {
	s.attached[program] = append(s.attached[program], shader)
}

func (s *stubBinding) LinkProgram(program Handle) {
	s.linkCalls = append(s.linkCalls, program)
}

func (s *stubBinding) ProgramLinkStatus(program Handle) bool {
	if s.forceLinkFail {
		return false
	}
	var hasVertex, hasFragment bool
	for _, sh := range s.attached[program] {
		switch s.stages[sh] {
		case StageVertex:
			hasVertex = true
		case StageFragment:
			hasFragment = true
		}
	}
	return hasVertex && hasFragment
}

func (s *stubBinding) ProgramInfoLog(program Handle) []byte {
	if s.programLog != nil {
		return s.programLog
	}
	return []byte("incomplete pipeline\x00")
}

func (s *stubBinding) DeleteProgram(program Handle) {
	s.deletedPrograms = append(s.deletedPrograms, program)
}

func (s *stubBinding) UseProgram(program Handle) {
	s.useCalls = append(s.useCalls, program)
	s.active = program
}

func (s *stubBinding) UniformLocation(program Handle, name string) int32 {
	s.uniformCalls++
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (s *stubBinding) GetError() uint32 {
	code := s.errCode
	s.errCode = 0
	return code
}

func deleteCount(deleted []Handle, h Handle) int {
	n := 0
	for _, d := range deleted {
		if d == h {
			n++
		}
	}
	return n
}
