package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gotriangle/graphics"
)

// Closer is the part of the window the handler needs to request shutdown.
type Closer interface {
	SetShouldClose(bool)
}

// Handler maps key presses to a clear color and keeps the viewport in step with the framebuffer.
type Handler struct {
	surface    graphics.Surface
	closer     Closer
	clearColor mgl32.Vec4
}

func NewHandler(surface graphics.Surface, closer Closer) *Handler {
	return &Handler{
		surface: surface,
		closer:  closer,
	}
}

// Brightness is 0.5, raised by 0.25 with Ctrl and lowered by 0.25 with Shift.
func Brightness(mods ModifierKey) float32 {
	val := float32(0.5)
	if mods&ModControl != 0 {
		val += 0.25
	}
	if mods&ModShift != 0 {
		val -= 0.25
	}
	return val
}

// ClearColorFor returns the color selected by key, or false when the key has no color.
func ClearColorFor(key Key, mods ModifierKey) (mgl32.Vec4, bool) {
	v := Brightness(mods)
	switch key {
	case KeyR:
		return mgl32.Vec4{v, 0, 0, v}, true
	case KeyG:
		return mgl32.Vec4{0, v, 0, v}, true
	case KeyB:
		return mgl32.Vec4{0, 0, v, v}, true
	case KeyM:
		return mgl32.Vec4{v, 0, v, v}, true
	case KeyC:
		return mgl32.Vec4{0, v, v, v}, true
	case KeyY:
		return mgl32.Vec4{v, v, 0, v}, true
	case KeyK:
		return mgl32.Vec4{0, 0, 0, v}, true
	}
	return mgl32.Vec4{}, false
}

func (h *Handler) OnKey(key Key, action Action, mods ModifierKey) {
	if action == Release {
		return
	}
	if key == KeyEscape {
		h.closer.SetShouldClose(true)
		return
	}
	if c, ok := ClearColorFor(key, mods); ok {
		h.SetClearColor(c)
	}
}

func (h *Handler) OnFramebufferSize(width, height int) {
	h.surface.Viewport(0, 0, width, height)
}

func (h *Handler) SetClearColor(c mgl32.Vec4) {
	h.clearColor = c
	h.surface.SetClearColor(c)
}

func (h *Handler) ClearColor() mgl32.Vec4 {
	return h.clearColor
}
