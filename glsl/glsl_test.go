package glsl

import (
	"strings"
	"testing"

	gst "github.com/richinsley/goshadertranslator"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		name   string
		isGLES bool
		major  int
		minor  int
		want   Dialect
		format gst.OutputFormat
	}{
		{name: "gl 3.3", major: 3, minor: 3, want: GLSL330, format: gst.OutputFormatGLSL330},
		{name: "gl 4.0", major: 4, minor: 0, want: GLSL330, format: gst.OutputFormatGLSL330},
		{name: "gl 4.1", major: 4, minor: 1, want: GLSL410, format: gst.OutputFormatGLSL410},
		{name: "gl 4.6", major: 4, minor: 6, want: GLSL410, format: gst.OutputFormatGLSL410},
		{name: "gles ignores version", isGLES: true, major: 4, minor: 1, want: ESSL300, format: gst.OutputFormatESSL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DialectFor(tt.isGLES, tt.major, tt.minor)
			if got != tt.want {
				t.Errorf("DialectFor() = %v, want %v", got, tt.want)
			}
			if got.OutputFormat() != tt.format {
				t.Errorf("OutputFormat() = %v, want %v", got.OutputFormat(), tt.format)
			}
		})
	}
}

func TestSources(t *testing.T) {
	tests := []struct {
		dialect Dialect
		version string
	}{
		{GLSL330, "#version 330 core\n"},
		{GLSL410, "#version 410 core\n"},
		{ESSL300, "#version 300 es\nprecision mediump float;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			vs := VertexShader(tt.dialect, "")
			fs := FragmentShader(tt.dialect)
			if !strings.HasPrefix(vs, tt.version) {
				t.Errorf("vertex shader starts %q, want %q", vs[:20], tt.version)
			}
			if !strings.HasPrefix(fs, tt.version) {
				t.Errorf("fragment shader starts %q, want %q", fs[:20], tt.version)
			}
			if !strings.Contains(vs, "out vec3 color;") || !strings.Contains(vs, "color = aCol;") {
				t.Errorf("vertex shader does not write the default varying:\n%s", vs)
			}
		})
	}
}

func TestVertexShader_MappedVarying(t *testing.T) {
	vs := VertexShader(GLSL410, "_ucolor")
	if !strings.Contains(vs, "out vec3 _ucolor;") || !strings.Contains(vs, "_ucolor = aCol;") {
		t.Errorf("vertex shader does not use the mapped varying:\n%s", vs)
	}
	if strings.Contains(vs, " color") {
		t.Errorf("vertex shader still references the default varying:\n%s", vs)
	}
}
