package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/gotriangle/glfwcontext"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/headless"
	options "github.com/richinsley/gotriangle/options"
	renderer "github.com/richinsley/gotriangle/renderer"
)

func runTriangle(opts *options.TriangleOptions) error {
	if *opts.Headless {
		ctx, err := headless.NewHeadless(*opts.Width, *opts.Height)
		if err != nil {
			return fmt.Errorf("failed to create headless context: %w", err)
		}
		defer ctx.Shutdown()
		return record(ctx, opts)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	// If recording, the window is hidden and frames go to ffmpeg instead.
	ctx, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	if *opts.Record {
		return record(ctx, opts)
	}

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	ctx.SetListener(r.Handler())
	ctx.SetSwapInterval(*opts.VSync)
	log.Println("Starting interactive render loop...")
	r.Run()
	return nil
}

func record(ctx graphics.Context, opts *options.TriangleOptions) error {
	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()
	return r.Record(opts)
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.TriangleOptions{
		Help:      flag.Bool("help", false, "Show help message"),
		Width:     flag.Int("width", 640, "Width of the window"),
		Height:    flag.Int("height", 480, "Height of the window"),
		Title:     flag.String("title", "Triangle", "Window title"),
		GLMajor:   flag.Int("gl-major", 4, "Requested OpenGL major version"),
		GLMinor:   flag.Int("gl-minor", 1, "Requested OpenGL minor version"),
		VSync:     flag.Int("vsync", 1, "Swap interval (0 disables vsync)"),
		Wireframe: flag.Bool("wireframe", false, "Draw polygons as wireframe"),
		WebGL:     flag.Bool("webgl", false, "Translate the WebGL2 fragment shader instead of using the native one"),
		Debug:     flag.Bool("debug", false, "Log OpenGL errors after every frame"),

		// Recording flags
		Record:     flag.Bool("record", false, "Render offscreen and encode to a video file"),
		Headless:   flag.Bool("headless", false, "Record through an EGL pbuffer without a window (Linux only)"),
		Duration:   flag.Float64("duration", 5.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "triangle.mp4", "Output file name for recording"),
		Codec:      flag.String("codec", "h264", "Video codec for recording (h264 or hevc)"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable (FFMPEG_PATH env var if not set)"),
		Script:     flag.String("script", "", "Comma separated key chords pressed once per second while recording, e.g. r,ctrl+g,shift+b"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Triangle demo")
		fmt.Println("Keys: R G B M C Y K set the background, Ctrl brightens, Shift darkens, Escape quits.")
		flag.PrintDefaults()
		return
	}

	if *opts.FFMPEGPath == "" {
		*opts.FFMPEGPath = os.Getenv("FFMPEG_PATH")
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := runTriangle(opts); err != nil {
		log.Fatalf("%v", err)
	}
	if *opts.Record {
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
	}
}
