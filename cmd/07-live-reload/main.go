// Live shader reload: edit assets/shaders/reload.frag while this runs and
// the triangle changes on save. A broken edit keeps the last good program on
// screen and prints the compile log. Run from the repository root.
package main

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ruipserra/learn-opengl/assets"
	"github.com/ruipserra/learn-opengl/gfx"
	glbinding "github.com/ruipserra/learn-opengl/gfx/gl"
	"github.com/ruipserra/learn-opengl/platform"
)

var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

func main() {
	win, err := platform.New(platform.Config{Title: "Live Reload", VSync: true})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	watcher, err := gfx.WatchFiles(glbinding.New(), []gfx.StageFile{
		{Stage: gfx.StageVertex, Path: assets.ShaderPath("reload.vert")},
		{Stage: gfx.StageFragment, Path: assets.ShaderPath("reload.frag")},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer watcher.Close()

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	const stride = 3 * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	for !win.ShouldClose() {
		win.PollEvents()

		program, swapped, err := watcher.Poll()
		if err != nil {
			log.Println("reload failed:", err)
		}
		if swapped {
			log.Println("shaders reloaded")
		}

		program.Activate()
		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		win.SwapBuffers()
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}
