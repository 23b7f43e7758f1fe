package graphics

import "github.com/go-gl/mathgl/mgl32"

// fakeContext closes itself after closeAfter polls.
type fakeContext struct {
	closeAfter  int
	polls       int
	swaps       int
	shouldClose bool
}

func (c *fakeContext) MakeCurrent()                   {}
func (c *fakeContext) Shutdown()                      {}
func (c *fakeContext) ShouldClose() bool              { return c.shouldClose }
func (c *fakeContext) SetShouldClose(v bool)          { c.shouldClose = v }
func (c *fakeContext) SwapBuffers()                   { c.swaps++ }
func (c *fakeContext) GetFramebufferSize() (int, int) { return 640, 480 }
func (c *fakeContext) Time() float64                  { return 0 }
func (c *fakeContext) PollEvents() {
	c.polls++
	if c.polls >= c.closeAfter {
		c.shouldClose = true
	}
}

// recorder logs surface and draw calls in order.
type recorder struct {
	calls []string
	clear mgl32.Vec4
}

func (r *recorder) SetClearColor(c mgl32.Vec4) { r.clear = c; r.calls = append(r.calls, "color") }
func (r *recorder) Clear()                     { r.calls = append(r.calls, "clear") }
func (r *recorder) Viewport(x, y, w, h int)    { r.calls = append(r.calls, "viewport") }

type drawable struct {
	name string
	rec  *recorder
}

func (d *drawable) Draw() { d.rec.calls = append(d.rec.calls, d.name) }
