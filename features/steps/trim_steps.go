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

	"move-clipper/cmd"
	"move-clipper/domain/clip"

	"github.com/cucumber/godog"
)

// trimExtractor records trim calls
type trimExtractor struct {
	calls []recordedExtraction
}

func (m *trimExtractor) Extract(ctx context.Context, sourcePath string, window clip.Window, outputPath string) error {
	m.calls = append(m.calls, recordedExtraction{sourcePath, window, outputPath})
	return nil
}

// osChecker checks and creates paths on the real filesystem
type osChecker struct{}

func (osChecker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osChecker) EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

type trimContext struct {
	tempDir   string
	videoDir  string
	outputDir string
	source    string
	duration  float64
	extractor *trimExtractor
	output    bytes.Buffer
	err       error
}

var SharedTrimContext = &trimContext{}

func InitializeTrimScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedTrimContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tempDir, err := os.MkdirTemp("", "trim-test-*")
		if err != nil {
			return c, err
		}
		*testCtx = trimContext{
			tempDir:   tempDir,
			videoDir:  filepath.Join(tempDir, "videos"),
			outputDir: filepath.Join(tempDir, "output"),
			extractor: &trimExtractor{},
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

	ctx.Step(`^a trim source "([^"]*)" of (\d+\.?\d*) seconds$`, testCtx.aTrimSource)
	ctx.Step(`^the video is trimmed from "([^"]*)" to "([^"]*)"$`, testCtx.theVideoIsTrimmed)
	ctx.Step(`^the trim output is "([^"]*)" from (\d+\.?\d*) to (\d+\.?\d*)$`, testCtx.theTrimOutputIs)
	ctx.Step(`^the trim output message names "([^"]*)"$`, testCtx.theTrimOutputMessageNames)
	ctx.Step(`^the trim fails with "([^"]*)"$`, testCtx.theTrimFailsWith)
}

func (s *trimContext) aTrimSource(name string, duration float64) error {
	s.source = name
	s.duration = duration
	return os.WriteFile(filepath.Join(s.videoDir, name), []byte("video"), 0644)
}

func (s *trimContext) theVideoIsTrimmed(start, end string) error {
	s.err = cmd.RunTrimWithDependencies(
		context.Background(),
		s.extractor,
		osChecker{},
		&fixedProber{duration: s.duration},
		osChecker{},
		s.videoDir,
		s.outputDir,
		s.source,
		start,
		end,
		&s.output,
	)
	return nil
}

func (s *trimContext) theTrimOutputIs(outputPath string, start, end float64) error {
	if s.err != nil {
		return fmt.Errorf("trim failed: %w", s.err)
	}
	if len(s.extractor.calls) != 1 {
		return fmt.Errorf("expected 1 trim extraction, got %d", len(s.extractor.calls))
	}
	call := s.extractor.calls[0]

	wantPath := filepath.Join(s.tempDir, filepath.FromSlash(outputPath))
	if call.outputPath != wantPath {
		return fmt.Errorf("output path = %q, want %q", call.outputPath, wantPath)
	}
	if math.Abs(call.window.Start-start) > 0.001 || math.Abs(call.window.End-end) > 0.001 {
		return fmt.Errorf("window = %+v, want [%v, %v]", call.window, start, end)
	}
	return nil
}

func (s *trimContext) theTrimOutputMessageNames(outputPath string) error {
	wantPath := filepath.Join(s.tempDir, filepath.FromSlash(outputPath))
	if !strings.Contains(s.output.String(), wantPath) {
		return fmt.Errorf("output %q does not mention %q", s.output.String(), wantPath)
	}
	return nil
}

func (s *trimContext) theTrimFailsWith(text string) error {
	if s.err == nil {
		return fmt.Errorf("trim succeeded, expected failure containing %q", text)
	}
	if !strings.Contains(s.err.Error(), text) {
		return fmt.Errorf("trim error %q does not contain %q", s.err, text)
	}
	return nil
}
