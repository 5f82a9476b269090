//go:build gocv

package probe

import (
	"context"
	"fmt"

	"move-clipper/domain/clip"

	"gocv.io/x/gocv"
)

// VideoProber implements clip.DurationProber by opening the video with
// OpenCV and deriving duration from the container's frame count and frame
// rate. Useful on machines that have OpenCV but no ffprobe.
type VideoProber struct{}

// NewVideoProber creates an OpenCV-backed duration prober
func NewVideoProber() *VideoProber {
	return &VideoProber{}
}

// Duration implements clip.DurationProber
func (p *VideoProber) Duration(ctx context.Context, path string) (float64, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	frames := capture.Get(gocv.VideoCaptureFrameCount)
	if fps <= 0 || frames <= 0 {
		return 0, fmt.Errorf("video %s reports no usable frame metadata (fps=%v, frames=%v)", path, fps, frames)
	}

	return frames / fps, nil
}

// Ensure VideoProber implements clip.DurationProber
var _ clip.DurationProber = (*VideoProber)(nil)
