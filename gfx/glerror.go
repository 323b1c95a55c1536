package gfx

import "fmt"

// ErrorCode is a GL error code as returned by glGetError. The constants
// mirror the values in the GL spec so this package stays independent of the
// binding.
type ErrorCode uint32

const (
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (e ErrorCode) Error() string {
	switch e {
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case OutOfMemory:
		return "out of memory"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	default:
		return fmt.Sprintf("unrecognized GL error 0x%04x", uint32(e))
	}
}

// CheckError pops the context's oldest recorded error, or returns nil when
// the error flag is clear. Handy while developing an example:
//
//	if err := gfx.CheckError(b); err != nil {
//		log.Println("GL:", err)
//	}
func CheckError(b Binding) error {
	if code := b.GetError(); code != 0 {
		return ErrorCode(code)
	}
	return nil
}
