package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gotriangle/encoder"
	"github.com/richinsley/gotriangle/input"
	options "github.com/richinsley/gotriangle/options"
)

// numBuffers is how many frames may wait for the encoder before rendering blocks.
const numBuffers = 3

// OffscreenTarget is an RGBA8 framebuffer that frames are rendered into and read back from.
type OffscreenTarget struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func NewOffscreenTarget(width, height int) (*OffscreenTarget, error) {
	ot := &OffscreenTarget{
		width:  width,
		height: height,
	}

	gl.GenFramebuffers(1, &ot.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, ot.fbo)
	gl.GenTextures(1, &ot.textureID)
	gl.BindTexture(gl.TEXTURE_2D, ot.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, ot.textureID, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		ot.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%04x)", status)
	}
	return ot, nil
}

func (ot *OffscreenTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, ot.fbo)
}

func (ot *OffscreenTarget) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels returns a fresh copy of the target's RGBA pixels, bottom row first.
func (ot *OffscreenTarget) ReadPixels() []byte {
	pixels := make([]byte, ot.width*ot.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, ot.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(ot.width), int32(ot.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

func (ot *OffscreenTarget) Destroy() {
	gl.DeleteFramebuffers(1, &ot.fbo)
	gl.DeleteTextures(1, &ot.textureID)
}

// Record renders a fixed number of frames offscreen and sends them to ffmpeg.
// Script chords are pressed one per second of output, starting with the first frame.
func (r *Renderer) Record(options *options.TriangleOptions) error {
	script, err := input.ParseScript(*options.Script)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	width, height, fps := *options.Width, *options.Height, *options.FPS
	target, err := NewOffscreenTarget(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen target: %w", err)
	}
	defer target.Destroy()

	cfg := encoder.Config{
		Width:      width,
		Height:     height,
		FPS:        fps,
		OutputFile: *options.OutputFile,
		Codec:      *options.Codec,
		FFMPEGPath: *options.FFMPEGPath,
	}

	log.Println("Starting in record mode...")
	frameChan := make(chan *encoder.Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)
	go func() {
		encoderDoneChan <- encoder.Run(cfg, frameChan)
	}()

	target.Bind()
	defer target.Unbind()
	r.surface.Viewport(0, 0, width, height)

	rendered, err := r.loop.RunFrames(options.TotalFrames(),
		func(frame int) {
			if chord, ok := input.ChordAt(script, frame, fps); ok {
				log.Printf("Frame %d: pressing %s", frame, chord)
				r.handler.OnKey(chord.Key, input.Press, chord.Mods)
			}
		},
		func(frame int) error {
			f := &encoder.Frame{Pixels: target.ReadPixels(), PTS: int64(frame)}
			select {
			case frameChan <- f:
				return nil
			case err := <-encoderDoneChan:
				if err == nil {
					err = fmt.Errorf("no error reported")
				}
				return fmt.Errorf("encoder stopped after %d frames: %w", frame, err)
			}
		})
	if err != nil {
		close(frameChan)
		return err
	}
	if rendered < options.TotalFrames() {
		log.Printf("Close requested, stopping after %d frames", rendered)
	}

	close(frameChan)
	if err := <-encoderDoneChan; err != nil {
		return err
	}
	log.Printf("Recorded %d frames to %s", rendered, *options.OutputFile)
	return nil
}
