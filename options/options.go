package options

import (
	"fmt"
	"strings"

	"github.com/richinsley/gotriangle/input"
)

type TriangleOptions struct {
	Help      *bool
	Width     *int
	Height    *int
	Title     *string
	GLMajor   *int
	GLMinor   *int
	VSync     *int
	Wireframe *bool // draw polygons as lines
	WebGL     *bool // translate the WebGL2 fragment shader instead of using the native one
	Debug     *bool // drain and log glGetError after every frame
	// Record options
	Record     *bool
	Headless   *bool // render through an EGL pbuffer instead of a hidden window (Linux)
	Duration   *float64
	FPS        *int
	OutputFile *string
	Codec      *string
	FFMPEGPath *string
	Script     *string // comma separated key chords, one applied per second while recording
}

// Validate checks the option values that cannot be caught by flag parsing.
func (o *TriangleOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.GLMajor < 3 || (*o.GLMajor == 3 && *o.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 3.3 core", *o.GLMajor, *o.GLMinor)
	}
	if !*o.Record {
		if *o.Headless {
			return fmt.Errorf("headless rendering is only available in record mode")
		}
		return nil
	}
	if *o.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *o.FPS)
	}
	if *o.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", *o.Duration)
	}
	if *o.OutputFile == "" {
		return fmt.Errorf("record mode needs an output file")
	}
	switch strings.ToLower(*o.Codec) {
	case "h264", "hevc":
	default:
		return fmt.Errorf("unsupported codec %q (want h264 or hevc)", *o.Codec)
	}
	if _, err := input.ParseScript(*o.Script); err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}
	return nil
}

// TotalFrames is the number of frames rendered in record mode.
func (o *TriangleOptions) TotalFrames() int {
	return int(*o.Duration * float64(*o.FPS))
}
