package shader

import (
	"fmt"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/gotriangle/glsl"
	xlate "github.com/richinsley/gotriangle/translator"
)

// TranslateWebGL translates the WebGL2 fragment shader to dialect d and returns a
// matching vertex/fragment pair.
func TranslateWebGL(d glsl.Dialect) (vertexSource, fragmentSource string, err error) {
	translator, err := xlate.GetTranslator()
	if err != nil {
		return "", "", err
	}

	fsShader, err := translator.TranslateShader(glsl.WebGLFragmentShader(), "fragment", gst.ShaderSpecWebGL2, d.OutputFormat())
	if err != nil {
		return "", "", fmt.Errorf("fragment shader translation to %s failed: %w", d, err)
	}

	varying := glsl.DefaultVarying
	if v, ok := fsShader.Variables[glsl.DefaultVarying]; ok && v.MappedName != "" {
		varying = v.MappedName
	}
	return glsl.VertexShader(d, varying), fsShader.Code, nil
}
