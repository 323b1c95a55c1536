// A rectangle from two triangles. The four corners go in a vertex buffer
// once; an element buffer indexes into them so the shared corners are not
// duplicated.
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
	0.5, 0.5, 0.0, // top right
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
	-0.5, 0.5, 0.0, // top left
}

var indices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
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
	win, err := platform.New(platform.Config{Title: "Hello Rectangle", VSync: true})
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

	// The element buffer binding is part of the VAO state, so it must be
	// bound while the VAO is.
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	const stride = 3 * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	program.Activate()

	for !win.ShouldClose() {
		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))

		win.SwapBuffers()
		win.WaitEvents()
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteBuffers(1, &ebo)
	gl.DeleteVertexArrays(1, &vao)
}
