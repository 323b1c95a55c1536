// A color per vertex, interleaved with the positions in one buffer. The
// rasterizer interpolates the colors across the triangle, which is why the
// inside turns into a gradient.
package main

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ruipserra/learn-opengl/gfx"
	glbinding "github.com/ruipserra/learn-opengl/gfx/gl"
	"github.com/ruipserra/learn-opengl/platform"
)

// Layout per vertex: x, y, z, r, g, b.
var vertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom left, red
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right, green
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top, blue
}

const vertexSrc = `
#version 330 core

layout (location = 0) in vec3 vbo_position;
layout (location = 1) in vec3 vbo_color;

out vec3 our_color;

void main() {
    gl_Position = vec4(vbo_position, 1.0);
    our_color = vbo_color;
}
`

const fragmentSrc = `
#version 330 core

in vec3 our_color;

out vec4 color;

void main() {
    color = vec4(our_color, 1.0);
}
`

func main() {
	win, err := platform.New(platform.Config{Title: "Colors In Vertex Data", VSync: true})
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

	// Six floats per vertex now; the color attribute starts three floats in.
	const stride = 6 * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

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
