package trim

import (
	"context"
	"fmt"
	"path/filepath"

	"move-clipper/domain/clip"
)

// DirMaker creates output directories.
type DirMaker interface {
	EnsureDir(path string) error
}

// Result contains the result of a trim operation
type Result struct {
	OutputPath string
	Window     clip.Window
}

// Service coordinates manual start/end trims. Unlike move extraction it
// needs no frame table: the operator supplies both ends of the window.
type Service struct {
	extractor clip.Extractor
	checker   clip.FileChecker
	prober    clip.DurationProber
	dirs      DirMaker
	outputDir string
}

// NewService creates a new trim Service
func NewService(extractor clip.Extractor, checker clip.FileChecker, prober clip.DurationProber, dirs DirMaker, outputDir string) *Service {
	return &Service{
		extractor: extractor,
		checker:   checker,
		prober:    prober,
		dirs:      dirs,
		outputDir: outputDir,
	}
}

// Input represents the input for a trim operation
type Input struct {
	SourcePath string
	StartTime  string // plain seconds or mm:ss
	EndTime    string // plain seconds or mm:ss
}

// Trim cuts [start, end] out of the source video, clamping the end to the
// video's duration, and writes <name>_trimmed<ext> to the output directory.
func (s *Service) Trim(ctx context.Context, input Input) (*Result, error) {
	if !s.checker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("source file does not exist: %s", input.SourcePath)
	}

	start, err := clip.ParseSeconds(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	end, err := clip.ParseSeconds(input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	duration, err := s.prober.Duration(ctx, input.SourcePath)
	if err != nil {
		return nil, err
	}

	if start >= duration {
		return nil, fmt.Errorf("start time %.2fs is beyond video duration %.2fs", start, duration)
	}
	if end > duration {
		end = duration
	}
	if end <= start {
		return nil, fmt.Errorf("end time %.2fs must be greater than start time %.2fs", end, start)
	}

	if err := s.dirs.EnsureDir(s.outputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	window := clip.Window{Start: start, End: end}
	outputPath := filepath.Join(s.outputDir, clip.TrimmedFilename(input.SourcePath))

	if err := s.extractor.Extract(ctx, input.SourcePath, window, outputPath); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: outputPath,
		Window:     window,
	}, nil
}
