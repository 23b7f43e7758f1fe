package encoder

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantCV  string
		wantTag string
	}{
		{
			name:   "h264",
			cfg:    Config{Width: 640, Height: 480, FPS: 60, OutputFile: "out.mp4", Codec: "h264"},
			wantCV: "libx264",
		},
		{
			name:   "default codec",
			cfg:    Config{Width: 640, Height: 480, FPS: 60, OutputFile: "out.mkv"},
			wantCV: "libx264",
		},
		{
			name:    "hevc mp4",
			cfg:     Config{Width: 1280, Height: 720, FPS: 30, OutputFile: "OUT.MP4", Codec: "hevc"},
			wantCV:  "libx265",
			wantTag: "hvc1",
		},
		{
			name:   "hevc mkv",
			cfg:    Config{Width: 1280, Height: 720, FPS: 30, OutputFile: "out.mkv", Codec: "HEVC"},
			wantCV: "libx265",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := Args(tt.cfg)

			if in["format"] != "rawvideo" || in["pix_fmt"] != "rgba" {
				t.Errorf("input format = %v/%v, want rawvideo/rgba", in["format"], in["pix_fmt"])
			}
			if in["framerate"] != tt.cfg.FPS {
				t.Errorf("framerate = %v, want %d", in["framerate"], tt.cfg.FPS)
			}
			if out["vf"] != "vflip" {
				t.Errorf("vf = %v, want vflip", out["vf"])
			}
			if out["c:v"] != tt.wantCV {
				t.Errorf("c:v = %v, want %s", out["c:v"], tt.wantCV)
			}
			tag, hasTag := out["tag:v"]
			if tt.wantTag == "" && hasTag {
				t.Errorf("unexpected tag:v = %v", tag)
			}
			if tt.wantTag != "" && tag != tt.wantTag {
				t.Errorf("tag:v = %v, want %s", tag, tt.wantTag)
			}
		})
	}
}

func TestArgs_Size(t *testing.T) {
	in, _ := Args(Config{Width: 320, Height: 200, FPS: 24})
	if in["s"] != "320x200" {
		t.Errorf("s = %v, want 320x200", in["s"])
	}
}

func TestConfig_FrameSize(t *testing.T) {
	cfg := Config{Width: 640, Height: 480}
	if got := cfg.FrameSize(); got != 640*480*4 {
		t.Errorf("FrameSize() = %d, want %d", got, 640*480*4)
	}
}

// runUntilReturn feeds frames of frameSize bytes to Run until Run returns. The
// channel is never closed, so Run must stop on its own.
func runUntilReturn(t *testing.T, cfg Config, frameSize int) (int, error) {
	t.Helper()
	frames := make(chan *Frame)
	done := make(chan error, 1)
	go func() { done <- Run(cfg, frames) }()

	timeout := time.After(10 * time.Second)
	for sent := 0; ; sent++ {
		select {
		case frames <- &Frame{Pixels: make([]byte, frameSize), PTS: int64(sent)}:
		case err := <-done:
			return sent, err
		case <-timeout:
			t.Fatalf("Run did not return after %d frames", sent)
		}
	}
}

func TestRun_EncoderFails(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	cfg := Config{Width: 2, Height: 2, FPS: 10, OutputFile: filepath.Join(t.TempDir(), "out.mp4"), FFMPEGPath: "false"}

	_, err := runUntilReturn(t, cfg, cfg.FrameSize())
	if err == nil {
		t.Fatal("Run() error = nil, want ffmpeg failure")
	}
	if !strings.Contains(err.Error(), "ffmpeg failed") {
		t.Errorf("Run() error = %v, want ffmpeg failure", err)
	}
}

func TestRun_WrongFrameSize(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	cfg := Config{Width: 2, Height: 2, FPS: 10, OutputFile: filepath.Join(t.TempDir(), "out.mp4"), FFMPEGPath: "true"}

	sent, err := runUntilReturn(t, cfg, cfg.FrameSize()-1)
	if err == nil {
		t.Fatal("Run() error = nil, want frame size error")
	}
	if want := "frame 0 has 15 bytes, want 16"; err.Error() != want {
		t.Errorf("Run() error = %q, want %q", err, want)
	}
	if sent != 1 {
		t.Errorf("Run consumed %d frames, want 1", sent)
	}
}

func TestRun_NoFrames(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	cfg := Config{Width: 2, Height: 2, FPS: 10, OutputFile: filepath.Join(t.TempDir(), "out.mp4"), FFMPEGPath: "true"}

	frames := make(chan *Frame)
	close(frames)
	if err := Run(cfg, frames); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}
