// Two textures sampled in one fragment shader and mixed with the vertex
// colors. The shaders live in assets/shaders, loaded at startup; the images
// come from assets/textures. Run from the repository root.
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

// Layout per vertex: x, y, z, r, g, b, u, v.
var vertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, // bottom left
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 1.0, // top left
	0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 1.0, 1.0, // top right
}

var indices = []uint32{
	0, 1, 2, // first triangle
	1, 2, 3, // second triangle
}

func main() {
	win, err := platform.New(platform.Config{Title: "Textures", VSync: true})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	vertexSrc, err := assets.LoadShader("texture.vert")
	if err != nil {
		log.Fatal(err)
	}
	fragmentSrc, err := assets.LoadShader("texture.frag")
	if err != nil {
		log.Fatal(err)
	}

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

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Eight floats per vertex: position, color, texture coordinate.
	const stride = 8 * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	texBox, err := makeTexture("container.png")
	if err != nil {
		log.Fatal(err)
	}
	texFace, err := makeTexture("awesomeface.png")
	if err != nil {
		log.Fatal(err)
	}

	program.Activate()
	// Point each sampler uniform at its texture unit, once.
	gl.Uniform1i(program.UniformLocation("our_texture_1"), 0)
	gl.Uniform1i(program.UniformLocation("our_texture_2"), 1)

	for !win.ShouldClose() {
		win.PollEvents()

		gl.ClearColor(0.3, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texBox)
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, texFace)

		gl.BindVertexArray(vao)
		gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
		gl.BindVertexArray(0)

		win.SwapBuffers()
	}

	gl.DeleteTextures(1, &texBox)
	gl.DeleteTextures(1, &texFace)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteBuffers(1, &ebo)
	gl.DeleteVertexArrays(1, &vao)
}

func makeTexture(name string) (uint32, error) {
	w, h, pixels, err := assets.LoadPNG(name)
	if err != nil {
		return 0, err
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}
