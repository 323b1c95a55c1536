// The first triangle, with every GL call spelled out: compile the two
// shaders by hand, link them, upload the vertices and describe their layout.
// 02b does the same thing through the gfx library.
package main

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

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

	// OpenGL renders through a programmable pipeline; a vertex and a
	// fragment shader are the two stages we must provide.
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		log.Fatal(err)
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		log.Fatal(err)
	}

	// The program is what the pipeline actually runs; it wires the
	// compiled stages together.
	program, err := linkProgram(vs, fs)
	if err != nil {
		log.Fatal(err)
	}

	// The linked program keeps the compiled code, so the shader objects
	// can go now.
	cleanupShader(program, vs)
	cleanupShader(program, fs)

	// A VAO records the attribute configuration below so binding it later
	// restores everything in one call.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	vbo := makeVBO(vertices)

	// Describe the vertex layout: attribute 0 is three tightly packed
	// floats per vertex.
	const stride = 3 * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	gl.UseProgram(program)

	for !win.ShouldClose() {
		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		win.SwapBuffers()
		win.WaitEvents()
	}

	gl.DeleteProgram(program)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader compile error: %s", infoLog)
	}
	return sh, nil
}

func linkProgram(vs, fs uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("program link error: %s", infoLog)
	}
	return program, nil
}

func cleanupShader(program, shader uint32) {
	gl.DetachShader(program, shader)
	gl.DeleteShader(shader)
}

func makeVBO(verts []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	return vbo
}
