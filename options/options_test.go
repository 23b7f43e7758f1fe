package options

import "testing"

func defaults() *TriangleOptions {
	help, wire, webgl, debug, record, headless := false, false, false, false, false, false
	width, height, major, minor, vsync, fps := 640, 480, 4, 1, 1, 60
	duration := 5.0
	title, output, codec, ffmpegPath, script := "Triangle", "triangle.mp4", "h264", "", ""
	return &TriangleOptions{
		Help:       &help,
		Width:      &width,
		Height:     &height,
		Title:      &title,
		GLMajor:    &major,
		GLMinor:    &minor,
		VSync:      &vsync,
		Wireframe:  &wire,
		WebGL:      &webgl,
		Debug:      &debug,
		Record:     &record,
		Headless:   &headless,
		Duration:   &duration,
		FPS:        &fps,
		OutputFile: &output,
		Codec:      &codec,
		FFMPEGPath: &ffmpegPath,
		Script:     &script,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *TriangleOptions)
		wantErr bool
	}{
		{name: "defaults", modify: func(o *TriangleOptions) {}},
		{name: "zero width", modify: func(o *TriangleOptions) { *o.Width = 0 }, wantErr: true},
		{name: "negative height", modify: func(o *TriangleOptions) { *o.Height = -1 }, wantErr: true},
		{name: "gl 3.3", modify: func(o *TriangleOptions) { *o.GLMajor, *o.GLMinor = 3, 3 }},
		{name: "gl 4.0", modify: func(o *TriangleOptions) { *o.GLMajor, *o.GLMinor = 4, 0 }},
		{name: "gl 3.2", modify: func(o *TriangleOptions) { *o.GLMajor, *o.GLMinor = 3, 2 }, wantErr: true},
		{name: "gl 2.1", modify: func(o *TriangleOptions) { *o.GLMajor, *o.GLMinor = 2, 1 }, wantErr: true},
		{name: "bad fps ignored without record", modify: func(o *TriangleOptions) { *o.FPS = 0 }},
		{name: "record", modify: func(o *TriangleOptions) { *o.Record = true }},
		{name: "record hevc", modify: func(o *TriangleOptions) { *o.Record = true; *o.Codec = "HEVC" }},
		{name: "record zero fps", modify: func(o *TriangleOptions) { *o.Record = true; *o.FPS = 0 }, wantErr: true},
		{name: "record zero duration", modify: func(o *TriangleOptions) { *o.Record = true; *o.Duration = 0 }, wantErr: true},
		{name: "record no output", modify: func(o *TriangleOptions) { *o.Record = true; *o.OutputFile = "" }, wantErr: true},
		{name: "record vp9", modify: func(o *TriangleOptions) { *o.Record = true; *o.Codec = "vp9" }, wantErr: true},
		{name: "record script", modify: func(o *TriangleOptions) { *o.Record = true; *o.Script = "r,ctrl+g,shift+b" }},
		{name: "headless without record", modify: func(o *TriangleOptions) { *o.Headless = true }, wantErr: true},
		{name: "headless record", modify: func(o *TriangleOptions) { *o.Record = true; *o.Headless = true }},
		{name: "record bad script", modify: func(o *TriangleOptions) { *o.Record = true; *o.Script = "r,q" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaults()
			tt.modify(o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTotalFrames(t *testing.T) {
	o := defaults()
	*o.Duration = 2.5
	*o.FPS = 30
	if got := o.TotalFrames(); got != 75 {
		t.Errorf("TotalFrames() = %d, want 75", got)
	}
}
