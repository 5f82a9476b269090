package extraction

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"move-clipper/domain/clip"
	"move-clipper/infrastructure/config"
	"move-clipper/infrastructure/framestore"
)

// Indexer determines the next free sequential clip index for a
// character/move pair under the output root.
type Indexer interface {
	NextIndex(character, move, outputRoot string) (int, error)
}

// DirMaker creates output directories.
type DirMaker interface {
	EnsureDir(path string) error
}

// Result contains the outcome of a single clip extraction
type Result struct {
	Character  string
	Move       string
	FrameCount int
	Window     clip.Window
	Index      int
	OutputPath string
}

// Service coordinates one clip extraction per marked timestamp: resolve the
// character and move against the frame table, obtain the frame count
// (prompting the operator for missing entries), size the window, pick the
// next output name, and hand the window to the extractor.
type Service struct {
	store     *framestore.Store
	extractor clip.Extractor
	indexer   Indexer
	dirs      DirMaker
	cfg       *config.Config
}

// NewService creates a new extraction Service
func NewService(store *framestore.Store, extractor clip.Extractor, indexer Indexer, dirs DirMaker, cfg *config.Config) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		indexer:   indexer,
		dirs:      dirs,
		cfg:       cfg,
	}
}

// Input represents one timestamp to extract a clip around
type Input struct {
	SourcePath string
	Character  string
	Move       string
	Center     float64
	Duration   float64
}

// ExtractClip extracts one clip around input.Center. Failures abort this
// clip only; the table and store are left consistent either way.
func (s *Service) ExtractClip(ctx context.Context, input Input, table clip.FrameTable, prompter framestore.Prompter, out io.Writer) (*Result, error) {
	if input.Center >= input.Duration {
		return nil, fmt.Errorf("timestamp %.2fs is beyond video duration %.2fs", input.Center, input.Duration)
	}

	character := table.ResolveCharacter(input.Character)
	move := table.ResolveMove(character, input.Move)

	frames, err := s.store.EnsureFrameCount(table, character, move, prompter, out)
	if err != nil {
		return nil, err
	}

	window, err := clip.ComputeWindow(clip.WindowParams{
		FrameCount:    frames,
		FPS:           s.cfg.Extraction.FPS,
		PaddingFrames: s.cfg.Extraction.PaddingFrames,
		ExtraPre:      s.cfg.Extraction.ExtraPre,
		ExtraPost:     s.cfg.Extraction.ExtraPost,
		Center:        input.Center,
		VideoDuration: input.Duration,
	})
	if err != nil {
		return nil, err
	}

	index, err := s.indexer.NextIndex(character, move, s.cfg.Paths.OutputDirectory)
	if err != nil {
		return nil, err
	}

	moveDir := clip.MoveDir(s.cfg.Paths.OutputDirectory, character, move)
	if err := s.dirs.EnsureDir(moveDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(moveDir, clip.ClipFilename(character, move, index, s.cfg.Extraction.OutputExtension))
	fmt.Fprintf(out, "Writing: %s\n", outputPath)

	if err := s.extractor.Extract(ctx, input.SourcePath, window, outputPath); err != nil {
		return nil, err
	}

	return &Result{
		Character:  character,
		Move:       move,
		FrameCount: frames,
		Window:     window,
		Index:      index,
		OutputPath: outputPath,
	}, nil
}
