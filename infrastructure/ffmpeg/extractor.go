package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"move-clipper/domain/clip"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command and returns any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Extractor implements clip.Extractor using ffmpeg. Clips are re-encoded
// rather than stream-copied so sub-second windows cut on the exact time
// rather than the nearest keyframe.
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new ffmpeg-based clip extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements clip.Extractor
func (e *Extractor) Extract(ctx context.Context, sourcePath string, window clip.Window, outputPath string) error {
	args := []string{
		"-i", sourcePath,
		"-ss", clip.FormatSeconds(window.Start),
		"-to", clip.FormatSeconds(window.End),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-y", // Overwrite output file if it exists
		outputPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Extractor implements clip.Extractor
var _ clip.Extractor = (*Extractor)(nil)
