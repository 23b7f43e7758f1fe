package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gotriangle/buffer"
	"github.com/richinsley/gotriangle/glsl"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/input"
	options "github.com/richinsley/gotriangle/options"
	"github.com/richinsley/gotriangle/scene"
	shader "github.com/richinsley/gotriangle/shader"
)

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Init loads the OpenGL function pointers for the current context and logs what was loaded.
func Init() error {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}

	log.Printf("OpenGL version '%s'", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("OpenGL renderer '%s' (%s)", gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VENDOR)))
	return nil
}

// Surface implements graphics.Surface on the currently bound framebuffer.
type Surface struct{}

func (s *Surface) SetClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (s *Surface) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *Surface) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// SetWireframe switches polygon rasterization between lines and filled.
func (s *Surface) SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Triangle draws an uploaded mesh with one shader program.
type Triangle struct {
	program     *shader.Program
	array       *buffer.Array
	vertexCount int32
	indexCount  int32
}

// NewTriangle uploads positions to attribute 0, colors to attribute 1, and the indices.
func NewTriangle(mesh *scene.Mesh, program *shader.Program) (*Triangle, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	array, err := buffer.NewArray([][]buffer.Attribute{
		{buffer.Float3(0)},
		{buffer.Float3(1)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer array: %w", err)
	}

	array.Bind()
	uploadErr := array.BufferData(0, mesh.PositionData())
	if uploadErr == nil {
		uploadErr = array.BufferData(1, mesh.ColorData())
	}
	if uploadErr == nil && len(mesh.Indices) > 0 {
		uploadErr = array.BufferElements(mesh.Indices)
	}
	array.Unbind()
	if uploadErr != nil {
		array.Destroy()
		return nil, fmt.Errorf("failed to upload mesh: %w", uploadErr)
	}

	return &Triangle{
		program:     program,
		array:       array,
		vertexCount: int32(mesh.VertexCount()),
		indexCount:  int32(len(mesh.Indices)),
	}, nil
}

// Draw issues one non-indexed and one indexed draw of the same geometry.
func (t *Triangle) Draw() {
	t.program.Bind()
	t.array.DrawArrays(buffer.Triangles, 0, t.vertexCount)
	if t.indexCount > 0 {
		t.array.DrawElements(buffer.Triangles, t.indexCount, gl.UNSIGNED_INT, 0)
	}
}

func (t *Triangle) Destroy() {
	t.array.Destroy()
}

// glesContext is implemented by contexts that know which GL dialect they run.
type glesContext interface {
	IsGLES() bool
}

// Renderer owns the GL resources of the demo and drives the frame loop.
type Renderer struct {
	context  graphics.Context
	surface  *Surface
	handler  *input.Handler
	program  *shader.Program
	triangle *Triangle
	loop     *graphics.Loop
	debug    bool
}

// NewRenderer makes ctx current, loads GL, compiles the shader and uploads the triangle.
func NewRenderer(ctx graphics.Context, options *options.TriangleOptions) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		surface: &Surface{},
		debug:   *options.Debug,
	}

	r.context.MakeCurrent()
	if err := Init(); err != nil {
		return nil, err
	}

	isGLES := false
	if g, ok := ctx.(glesContext); ok {
		isGLES = g.IsGLES()
	}

	dialect := glsl.DialectFor(isGLES, *options.GLMajor, *options.GLMinor)
	log.Printf("Compiling shaders as %s", dialect)

	var err error
	vertexSource := glsl.VertexShader(dialect, glsl.DefaultVarying)
	fragmentSource := glsl.FragmentShader(dialect)
	if *options.WebGL {
		vertexSource, fragmentSource, err = shader.TranslateWebGL(dialect)
		if err != nil {
			return nil, err
		}
	}

	r.program, err = shader.NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.triangle, err = NewTriangle(scene.Triangle(), r.program)
	if err != nil {
		r.program.Destroy()
		return nil, err
	}

	r.handler = input.NewHandler(r.surface, r.context)
	width, height := r.context.GetFramebufferSize()
	r.handler.OnFramebufferSize(width, height)
	if *options.Wireframe {
		if isGLES {
			log.Println("Warning: wireframe is not available on OpenGL ES, drawing filled polygons.")
		} else {
			r.surface.SetWireframe(true)
		}
	}

	r.loop = &graphics.Loop{
		Context: r.context,
		Surface: r.surface,
		Scene:   []graphics.Drawable{r.triangle},
	}
	if r.debug {
		CheckErrors("setup")
		r.loop.AfterFrame = func(frame int) {
			CheckErrors(fmt.Sprintf("frame %d", frame))
		}
	}

	return r, nil
}

// Handler returns the input listener that should receive the window's events.
func (r *Renderer) Handler() *input.Handler {
	return r.handler
}

// Run renders to the window until it is asked to close.
func (r *Renderer) Run() {
	frames := r.loop.Run()
	log.Printf("Rendered %d frames", frames)
}

func (r *Renderer) Shutdown() {
	if r.triangle != nil {
		r.triangle.Destroy()
	}
	if r.program != nil {
		r.program.Destroy()
	}
}
