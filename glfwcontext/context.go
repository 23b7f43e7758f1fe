package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gotriangle/input"
	options "github.com/richinsley/gotriangle/options"
)

// Context wraps a GLFW window and routes its callbacks to an input.Listener.
type Context struct {
	window   *glfw.Window
	listener input.Listener
}

// New creates the window and its OpenGL context. A hidden window is used for record mode.
func New(options *options.TriangleOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, *options.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, *options.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	c := &Context{
		window: win,
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	return c, nil
}

// SetListener routes key and framebuffer-size events to l. A nil listener drops them.
func (c *Context) SetListener(l input.Listener) {
	c.listener = l
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.listener == nil {
		// Escape still closes a window nobody listens to.
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
		return
	}
	c.listener.OnKey(input.Key(key), input.Action(action), input.ModifierKey(mods))
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width int, height int) {
	if c.listener != nil {
		c.listener.OnFramebufferSize(width, height)
	}
}

func (c *Context) IsGLES() bool {
	// GLFW contexts are always requested as desktop core profile.
	return false
}

// SetSwapInterval sets the vsync interval of the current context.
func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window. GLFW itself is terminated by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
