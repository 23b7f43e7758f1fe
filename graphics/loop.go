package graphics

// Loop drives the per-frame cycle: poll input, clear, draw, present.
type Loop struct {
	Context Context
	Surface Surface
	Scene   []Drawable
	// AfterFrame runs once a frame is drawn and before it is presented.
	AfterFrame func(frame int)

	frames int
}

// Frame clears the surface and draws every object once without presenting.
func (l *Loop) Frame() {
	l.Surface.Clear()
	for _, d := range l.Scene {
		d.Draw()
	}
	if l.AfterFrame != nil {
		l.AfterFrame(l.frames)
	}
	l.frames++
}

// Run renders until the window is asked to close and returns the number of frames presented.
func (l *Loop) Run() int {
	start := l.frames
	for !l.Context.ShouldClose() {
		l.Context.PollEvents()
		l.Frame()
		l.Context.SwapBuffers()
	}
	return l.frames - start
}

// Frames returns how many frames have been drawn so far.
func (l *Loop) Frames() int {
	return l.frames
}

// RunFrames renders up to total frames without presenting them. before runs ahead of
// each frame and may request a close, which stops the run before that frame is drawn.
// capture runs once the frame is drawn; an error from it stops the run.
// It returns the number of frames captured.
func (l *Loop) RunFrames(total int, before func(frame int), capture func(frame int) error) (int, error) {
	captured := 0
	for i := 0; i < total; i++ {
		if before != nil {
			before(i)
		}
		if l.Context.ShouldClose() {
			break
		}
		l.Frame()
		if capture != nil {
			if err := capture(i); err != nil {
				return captured, err
			}
		}
		captured++
	}
	return captured, nil
}
