package glsl

import (
	"fmt"

	gst "github.com/richinsley/goshadertranslator"
)

// Dialect is the shading language version the triangle sources are emitted in.
type Dialect int

const (
	GLSL330 Dialect = iota // desktop GL 3.3 to 4.0
	GLSL410                // desktop GL 4.1 and later
	ESSL300                // OpenGL ES 3
)

// DialectFor picks the dialect a context of the given version compiles.
func DialectFor(isGLES bool, major, minor int) Dialect {
	switch {
	case isGLES:
		return ESSL300
	case major > 4 || (major == 4 && minor >= 1):
		return GLSL410
	default:
		return GLSL330
	}
}

func (d Dialect) String() string {
	switch d {
	case GLSL330:
		return "GLSL 330"
	case GLSL410:
		return "GLSL 410"
	case ESSL300:
		return "ESSL 300"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// header is the version line plus, for ES, the default float precision.
func (d Dialect) header() string {
	switch d {
	case ESSL300:
		return "#version 300 es\nprecision mediump float;\n"
	case GLSL410:
		return "#version 410 core\n"
	default:
		return "#version 330 core\n"
	}
}

// OutputFormat is the goshadertranslator target producing this dialect.
func (d Dialect) OutputFormat() gst.OutputFormat {
	switch d {
	case ESSL300:
		return gst.OutputFormatESSL
	case GLSL410:
		return gst.OutputFormatGLSL410
	default:
		return gst.OutputFormatGLSL330
	}
}

// ─────────────────────────────────── Sources ────────────────────────────────────

const vertexShaderBody = `layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aCol;
out vec3 %[1]s;
void main() {
    gl_Position = vec4(aPos, 1.0);
    %[1]s = aCol;
}
`

const fragmentShaderBody = `in vec3 color;
out vec4 FragColor;
void main() {
    FragColor = vec4(color, 1.0);
}
`

// Translated to the context's dialect before compiling. The translator may rename
// the color varying, so the vertex shader is generated with the mapped name.
const fragmentShaderSourceWebGL = `#version 300 es
precision highp float;
in vec3 color;
out vec4 FragColor;
void main() {
    FragColor = vec4(color, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// DefaultVarying is the name of the color output of the vertex shader.
const DefaultVarying = "color"

// VertexShader returns the vertex shader, writing the vertex color to the named varying.
func VertexShader(d Dialect, varying string) string {
	if varying == "" {
		varying = DefaultVarying
	}
	return d.header() + fmt.Sprintf(vertexShaderBody, varying)
}

func FragmentShader(d Dialect) string {
	return d.header() + fragmentShaderBody
}

func WebGLFragmentShader() string {
	return fragmentShaderSourceWebGL
}
