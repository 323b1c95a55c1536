// Package platform creates the GLFW window and GL context the examples draw
// into. Windowing stays out of gfx on purpose; the library only needs a
// current context, not a window.
package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Config struct {
	Title  string
	Width  int // defaults to 1024
	Height int // defaults to 768
	VSync  bool
}

// Window wraps a GLFW window whose GL 3.3 core context is current on the
// calling thread.
type Window struct {
	w *glfw.Window
}

// New must be called on the main thread before any GL call. It initializes
// GLFW, creates the window, makes its context current and loads the GL
// function pointers.
func New(cfg Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	if cfg.Width == 0 {
		cfg.Width = 1024
	}
	if cfg.Height == 0 {
		cfg.Height = 768
	}

	// GL 3.3 core profile (Mac requires the forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{w: win}, nil
}

func (g *Window) PollEvents()                 { glfw.PollEvents() }
func (g *Window) WaitEvents()                 { glfw.WaitEvents() }
func (g *Window) SwapBuffers()                { g.w.SwapBuffers() }
func (g *Window) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *Window) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *Window) SetTitle(t string)           { g.w.SetTitle(t) }

// Destroy tears down the window and GLFW itself. The GL context dies with
// it, so release GPU objects first.
func (g *Window) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
