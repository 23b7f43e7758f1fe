package graphics

import "github.com/go-gl/mathgl/mgl32"

// Context defines the interface for a window that owns an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	GetFramebufferSize() (int, int)
	Time() float64
}

// Surface is the framebuffer state touched by the render loop and input callbacks.
type Surface interface {
	SetClearColor(c mgl32.Vec4)
	Clear()
	Viewport(x, y, width, height int)
}

// Drawable issues the draw calls for one object. The surface is already cleared.
type Drawable interface {
	Draw()
}
