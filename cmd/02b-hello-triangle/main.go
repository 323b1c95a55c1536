// The same triangle as 02, but shader compilation and linking go through
// the gfx library instead of raw GL calls.
package main

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ruipserra/learn-opengl/gfx"
	glbinding "github.com/ruipserra/learn-opengl/gfx/gl"
	"github.com/ruipserra/learn-opengl/platform"
)

var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const vertexSrc = `
#version 330 core

layout (location = 0) in vec3 position;

void main() {
    gl_Position = vec4(position, 1.0);
}
`

const fragmentSrc = `
#version 330 core

out vec4 color;

void main() {
    color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

func main() {
	win, err := platform.New(platform.Config{Title: "Hello Triangle", VSync: true})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	program, err := gfx.NewSourceCompiler(glbinding.New()).Compile([]gfx.StageSource{
		{Stage: gfx.StageVertex, Source: vertexSrc},
		{Stage: gfx.StageFragment, Source: fragmentSrc},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer program.Destroy()

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

	program.Activate()

	for !win.ShouldClose() {
		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		win.SwapBuffers()
		win.WaitEvents()
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}
