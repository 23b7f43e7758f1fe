package encoder

import (
	"fmt"
	"io"
	"log"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered frame's RGBA pixels, bottom row first as read from GL.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Config describes the video produced from the frame stream.
type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	Codec      string // "h264" or "hevc"
	FFMPEGPath string
}

// FrameSize is the byte length of one RGBA frame.
func (c Config) FrameSize() int {
	return c.Width * c.Height * 4
}

// Args builds the ffmpeg input and output arguments for raw RGBA frames on stdin.
func Args(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		// glReadPixels returns rows bottom-up
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	if strings.EqualFold(cfg.Codec, "hevc") {
		outputArgs["c:v"] = "libx265"
		if strings.HasSuffix(strings.ToLower(cfg.OutputFile), ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	return
}

// Run is the consumer side of record mode. It starts ffmpeg and streams every
// frame received on frames into its stdin until the channel is closed. Run returns
// as soon as a frame cannot be delivered; the caller must stop sending then.
func Run(cfg Config, frames <-chan *Frame) error {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := Args(cfg)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if cfg.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(cfg.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock the writer if ffmpeg exits early
		pipeReader.CloseWithError(err)
		errc <- err
	}()

	// stop closes ffmpeg's stdin and waits for it to exit.
	stop := func(err error) error {
		pipeWriter.CloseWithError(err)
		if ffErr := <-errc; ffErr != nil {
			log.Printf("ffmpeg exited: %v", ffErr)
		}
		return err
	}

	frameSize := cfg.FrameSize()
	for frame := range frames {
		if len(frame.Pixels) != frameSize {
			return stop(fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), frameSize))
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			return stop(fmt.Errorf("ffmpeg failed at frame %d: %w", frame.PTS, err))
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
