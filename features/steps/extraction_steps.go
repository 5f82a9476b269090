//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"move-clipper/application/extraction"
	"move-clipper/cmd"
	"move-clipper/domain/clip"
	"move-clipper/infrastructure/config"
	"move-clipper/infrastructure/filesystem"
	"move-clipper/infrastructure/framestore"

	"github.com/cucumber/godog"
)

// recordingExtractor records extraction calls and creates the output files
// so the filesystem-backed indexer sees earlier clips.
type recordingExtractor struct {
	calls []recordedExtraction
}

type recordedExtraction struct {
	sourcePath string
	window     clip.Window
	outputPath string
}

func (m *recordingExtractor) Extract(ctx context.Context, sourcePath string, window clip.Window, outputPath string) error {
	m.calls = append(m.calls, recordedExtraction{sourcePath, window, outputPath})
	return os.WriteFile(outputPath, []byte("clip"), 0644)
}

// fixedProber reports a fixed duration for any path
type fixedProber struct {
	duration float64
}

func (m *fixedProber) Duration(ctx context.Context, path string) (float64, error) {
	return m.duration, nil
}

type extractionContext struct {
	tempDir   string
	videoDir  string
	outputDir string
	store     *framestore.Store
	duration  float64
	source    string
	extractor *recordingExtractor
	output    bytes.Buffer
	err       error
}

var SharedExtractionContext = &extractionContext{}

func InitializeExtractionScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedExtractionContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tempDir, err := os.MkdirTemp("", "extraction-test-*")
		if err != nil {
			return c, err
		}
		*testCtx = extractionContext{
			tempDir:   tempDir,
			videoDir:  filepath.Join(tempDir, "videos"),
			outputDir: filepath.Join(tempDir, "output"),
			store:     framestore.NewStore(filepath.Join(tempDir, "frame_data.json")),
			extractor: &recordingExtractor{},
		}
		if err := os.MkdirAll(testCtx.videoDir, 0755); err != nil {
			return c, err
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		return c, nil
	})

	ctx.Step(`^a video "([^"]*)" of (\d+\.?\d*) seconds$`, testCtx.aVideo)
	ctx.Step(`^no video "([^"]*)" exists$`, testCtx.noVideoExists)
	ctx.Step(`^a stored extraction frame count of (\d+) for "([^"]*)" move "([^"]*)"$`, testCtx.aStoredExtractionFrameCount)
	ctx.Step(`^the extractor session runs with inputs:$`, testCtx.theExtractorSessionRunsWithInputs)
	ctx.Step(`^the extractor session runs for "([^"]*)"$`, testCtx.theExtractorSessionRunsFor)
	ctx.Step(`^clip (\d+) is "([^"]*)" from (\d+\.?\d*) to (\d+\.?\d*)$`, testCtx.clipIsFromTo)
	ctx.Step(`^clip (\d+) is under "([^"]*)"$`, testCtx.clipIsUnder)
	ctx.Step(`^(\d+) clips? (?:is|are) extracted$`, testCtx.clipsAreExtracted)
	ctx.Step(`^the session output contains "([^"]*)"$`, testCtx.theSessionOutputContains)
	ctx.Step(`^the session frame data records (\d+) for "([^"]*)" move "([^"]*)"$`, testCtx.theSessionFrameDataRecords)
	ctx.Step(`^the session fails with "([^"]*)"$`, testCtx.theSessionFailsWith)
}

func (s *extractionContext) aVideo(name string, duration float64) error {
	s.source = name
	s.duration = duration
	return os.WriteFile(filepath.Join(s.videoDir, name), []byte("video"), 0644)
}

func (s *extractionContext) noVideoExists(name string) error {
	s.source = name
	s.duration = 60.0
	return nil
}

func (s *extractionContext) aStoredExtractionFrameCount(frames int, character, move string) error {
	table, _, err := s.store.Load()
	if err != nil {
		return err
	}
	_, _, err = s.store.Set(table, character, move, frames)
	return err
}

func (s *extractionContext) runSession(inputs []string) error {
	cfg := config.Default()
	cfg.Paths.VideoDirectory = s.videoDir
	cfg.Paths.OutputDirectory = s.outputDir
	cfg.Paths.FrameDataPath = s.store.Path()

	checker := filesystem.NewChecker()
	indexer := filesystem.NewIndexer(cfg.Extraction.OutputExtension)
	service := extraction.NewService(s.store, s.extractor, indexer, checker, cfg)

	prompter := NewMockPrompter(inputs, nil)
	s.err = cmd.RunExtractorWithDependencies(
		context.Background(),
		service,
		s.store,
		checker,
		&fixedProber{duration: s.duration},
		s.videoDir,
		s.source,
		prompter,
		&s.output,
	)
	return nil
}

func (s *extractionContext) theExtractorSessionRunsWithInputs(inputs *godog.Table) error {
	var answers []string
	for _, row := range inputs.Rows {
		answers = append(answers, strings.TrimSpace(row.Cells[0].Value))
	}
	if err := s.runSession(answers); err != nil {
		return err
	}
	return s.err
}

func (s *extractionContext) theExtractorSessionRunsFor(source string) error {
	s.source = source
	return s.runSession(nil)
}

func (s *extractionContext) clipIsFromTo(index int, outputPath string, start, end float64) error {
	if index > len(s.extractor.calls) {
		return fmt.Errorf("only %d clips were extracted", len(s.extractor.calls))
	}
	call := s.extractor.calls[index-1]

	wantPath := filepath.Join(s.tempDir, filepath.FromSlash(outputPath))
	if call.outputPath != wantPath {
		return fmt.Errorf("clip %d path = %q, want %q", index, call.outputPath, wantPath)
	}
	if math.Abs(call.window.Start-start) > 0.001 || math.Abs(call.window.End-end) > 0.001 {
		return fmt.Errorf("clip %d window = %+v, want [%v, %v]", index, call.window, start, end)
	}
	if _, err := os.Stat(call.outputPath); err != nil {
		return fmt.Errorf("clip %d was not written: %w", index, err)
	}
	return nil
}

func (s *extractionContext) clipIsUnder(index int, dir string) error {
	if index > len(s.extractor.calls) {
		return fmt.Errorf("only %d clips were extracted", len(s.extractor.calls))
	}
	wantDir := filepath.Join(s.tempDir, filepath.FromSlash(dir))
	if got := filepath.Dir(s.extractor.calls[index-1].outputPath); got != wantDir {
		return fmt.Errorf("clip %d directory = %q, want %q", index, got, wantDir)
	}
	return nil
}

func (s *extractionContext) clipsAreExtracted(count int) error {
	if len(s.extractor.calls) != count {
		return fmt.Errorf("extracted %d clips, want %d", len(s.extractor.calls), count)
	}
	return nil
}

func (s *extractionContext) theSessionOutputContains(text string) error {
	if !strings.Contains(s.output.String(), text) {
		return fmt.Errorf("session output %q does not contain %q", s.output.String(), text)
	}
	return nil
}

func (s *extractionContext) theSessionFrameDataRecords(frames int, character, move string) error {
	table, _, err := s.store.Load()
	if err != nil {
		return err
	}
	got, ok := table.FrameCount(character, move)
	if !ok || got != frames {
		return fmt.Errorf("persisted %s/%s = %d (%v), want %d", character, move, got, ok, frames)
	}
	return nil
}

func (s *extractionContext) theSessionFailsWith(text string) error {
	if s.err == nil {
		return fmt.Errorf("session succeeded, expected failure containing %q", text)
	}
	if !strings.Contains(s.err.Error(), text) {
		return fmt.Errorf("session error %q does not contain %q", s.err, text)
	}
	return nil
}
