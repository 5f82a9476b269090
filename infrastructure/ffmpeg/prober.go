package ffmpeg

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"move-clipper/domain/clip"
)

// Prober implements clip.DurationProber using ffprobe.
type Prober struct {
	ffprobePath string
	runner      CommandRunner
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		p.ffprobePath = path
	}
}

// WithProberCommandRunner sets a custom command runner (for testing)
func WithProberCommandRunner(runner CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// NewProber creates a new ffprobe-based duration prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Duration implements clip.DurationProber
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	out, err := p.runner.Output(ctx, p.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparsable duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("ffprobe reported non-positive duration %v for %s", duration, path)
	}

	return duration, nil
}

// Ensure Prober implements clip.DurationProber
var _ clip.DurationProber = (*Prober)(nil)
