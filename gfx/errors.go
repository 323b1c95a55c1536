package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource means the shader source contained a NUL byte. No GPU
	// object is allocated in this case.
	ErrInvalidSource = errors.New("shader source contains a NUL byte")

	// ErrInvalidInfoLog means the driver returned a diagnostic log that is
	// not valid UTF-8.
	ErrInvalidInfoLog = errors.New("driver info log is not valid UTF-8")
)

// CompileError reports a shader compile failure. Log is the driver's
// diagnostic output, verbatim.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program link failure. Log is the driver's diagnostic
// output, verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link program: " + e.Log
}
