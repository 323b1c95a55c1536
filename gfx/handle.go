package gfx

// Handle identifies a GPU-side object (shader or program).
type Handle uint32

// NoObject is the reserved "no object" handle. Binding a program with
// NoObject clears the pipeline; a destroyed wrapper holds NoObject.
const NoObject Handle = 0

// Object is implemented by every wrapper that owns a GPU object.
type Object interface {
	ID() Handle
}
