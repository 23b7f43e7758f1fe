package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// maxErrorDrain bounds the glGetError loop; a lost context can report errors forever.
const maxErrorDrain = 32

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

// CheckErrors drains the GL error queue, logging each entry, and returns how many were found.
func CheckErrors(label string) int {
	n := 0
	for ; n < maxErrorDrain; n++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		log.Printf("OpenGL error after %s: %s", label, errorName(code))
	}
	return n
}
