//go:build !gocv

package probe

import (
	"context"
	"fmt"

	"move-clipper/domain/clip"
)

// VideoProber is a stub when GoCV/OpenCV is not available
type VideoProber struct{}

// NewVideoProber creates a stub prober (requires building with -tags=gocv)
func NewVideoProber() *VideoProber {
	return &VideoProber{}
}

// Duration returns an error indicating the OpenCV prober is not available
func (p *VideoProber) Duration(ctx context.Context, path string) (float64, error) {
	return 0, fmt.Errorf("opencv prober not available: build with '-tags=gocv' and install OpenCV/GoCV, or set prober to ffprobe")
}

// Ensure VideoProber implements clip.DurationProber
var _ clip.DurationProber = (*VideoProber)(nil)
