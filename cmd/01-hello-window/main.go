package main

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ruipserra/learn-opengl/platform"
)

func main() {
	win, err := platform.New(platform.Config{
		Title:  "Hello Window",
		Width:  800,
		Height: 600,
		VSync:  true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	// Clear commands go to the back buffer; nothing shows until we swap.
	// With double buffering a frame is fully prepared off-screen first,
	// which avoids the glitches of drawing straight to the screen.
	gl.ClearColor(0.3, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	win.SwapBuffers()

	// Nothing animates here, so sleep until events arrive.
	for !win.ShouldClose() {
		win.WaitEvents()
	}
}
