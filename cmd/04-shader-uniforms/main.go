// Uniforms are how the CPU side feeds values into a linked program. Here the
// triangle's color pulses: every frame the green channel is recomputed from
// the elapsed time and written to the our_color uniform.
package main

import (
	"log"
	"time"
	"unsafe"

	"github.com/chewxy/math32"
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

uniform vec4 our_color;

void main() {
    color = our_color;
}
`

func main() {
	win, err := platform.New(platform.Config{Title: "Shader Uniforms", VSync: true})
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
	gl.BindVertexArray(0)

	start := time.Now()

	// The color changes every frame, so poll instead of waiting for events.
	for !win.ShouldClose() {
		win.PollEvents()

		t := float32(time.Since(start).Seconds())
		green := math32.Sin(t)/2 + 0.5

		// The program must be active before its uniforms can be set.
		program.Activate()
		gl.Uniform4f(program.UniformLocation("our_color"), 0.0, green, 0.0, 1.0)

		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)

		win.SwapBuffers()
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}
