package clip

import (
	"errors"
	"fmt"
)

// Default extraction constants, expressed at the 60fps reference frame rate
// that frame counts are recorded against.
const (
	DefaultFPS           = 60.0
	DefaultPaddingFrames = 13
	DefaultExtraPre      = 0.10
	DefaultExtraPost     = 0.10
)

// ErrEmptyWindow indicates a computed clip window that collapsed to nothing
// after clamping, e.g. a timestamp at the very end of the video.
var ErrEmptyWindow = errors.New("computed clip window is empty")

// Window is the [start, end] interval, in seconds, to extract from the
// source video for one clip. Start is strictly before End and both fall
// inside the video.
type Window struct {
	Start float64
	End   float64
}

// Seconds returns the window length.
func (w Window) Seconds() float64 {
	return w.End - w.Start
}

// WindowParams are the inputs to ComputeWindow. FrameCount is the move's
// duration in frames at FPS; Center is where the operator marked the move;
// PaddingFrames and the Extra values widen the window on each side.
type WindowParams struct {
	FrameCount    int
	FPS           float64
	PaddingFrames int
	ExtraPre      float64
	ExtraPost     float64
	Center        float64
	VideoDuration float64
}

// ComputeWindow sizes a clip window around the center timestamp. The move's
// nominal duration is split evenly before and after the center, padded on
// each side, then clamped to the video bounds.
func ComputeWindow(p WindowParams) (Window, error) {
	moveDuration := float64(p.FrameCount) / p.FPS
	padSeconds := float64(p.PaddingFrames) / p.FPS

	totalPre := moveDuration/2 + padSeconds + p.ExtraPre
	totalPost := moveDuration/2 + padSeconds + p.ExtraPost

	start := p.Center - totalPre
	if start < 0 {
		start = 0
	}
	end := p.Center + totalPost
	if end > p.VideoDuration {
		end = p.VideoDuration
	}

	if start >= end {
		return Window{}, fmt.Errorf("%w: adjust the timestamp or padding", ErrEmptyWindow)
	}

	return Window{Start: start, End: end}, nil
}
