//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"move-clipper/domain/clip"
	"move-clipper/infrastructure/framestore"

	"github.com/cucumber/godog"
)

// MockPrompter implements cmd.Prompter and framestore.Prompter for testing
type MockPrompter struct {
	inputResponses   []string
	confirmResponses []bool
	inputIndex       int
	confirmIndex     int
}

func NewMockPrompter(inputs []string, confirms []bool) *MockPrompter {
	return &MockPrompter{
		inputResponses:   inputs,
		confirmResponses: confirms,
	}
}

func (m *MockPrompter) Input(message string, defaultValue string) (string, error) {
	if m.inputIndex >= len(m.inputResponses) {
		if defaultValue != "" {
			return defaultValue, nil
		}
		return "", fmt.Errorf("no more input responses available for message: %s", message)
	}
	response := m.inputResponses[m.inputIndex]
	m.inputIndex++
	return response, nil
}

func (m *MockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if m.confirmIndex >= len(m.confirmResponses) {
		return defaultValue, nil
	}
	response := m.confirmResponses[m.confirmIndex]
	m.confirmIndex++
	return response, nil
}

func (m *MockPrompter) Select(message string, options []string) (string, error) {
	return m.Input(message, "")
}

type frameStoreContext struct {
	tempDir   string
	store     *framestore.Store
	table     clip.FrameTable
	reset     bool
	frames    int
	prompted  int
	output    bytes.Buffer
	lastError error
}

var SharedFrameStoreContext = &frameStoreContext{}

func InitializeFrameStoreScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedFrameStoreContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tempDir, err := os.MkdirTemp("", "framestore-test-*")
		if err != nil {
			return c, err
		}
		*testCtx = frameStoreContext{
			tempDir: tempDir,
			store:   framestore.NewStore(filepath.Join(tempDir, "frame_data.json")),
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		return c, nil
	})

	ctx.Step(`^no frame data file exists$`, testCtx.noFrameDataFileExists)
	ctx.Step(`^the frame data file contains "([^"]*)"$`, testCtx.theFrameDataFileContains)
	ctx.Step(`^a stored frame count of (\d+) for "([^"]*)" move "([^"]*)"$`, testCtx.aStoredFrameCount)
	ctx.Step(`^the frame table is loaded$`, testCtx.theFrameTableIsLoaded)
	ctx.Step(`^the frame table is empty$`, testCtx.theFrameTableIsEmpty)
	ctx.Step(`^no reset is reported$`, testCtx.noResetIsReported)
	ctx.Step(`^a reset is reported$`, testCtx.aResetIsReported)
	ctx.Step(`^the frame data file contains an empty table$`, testCtx.theFrameDataFileContainsAnEmptyTable)
	ctx.Step(`^the frame count for "([^"]*)" move "([^"]*)" is requested$`, testCtx.theFrameCountIsRequested)
	ctx.Step(`^the frame count for "([^"]*)" move "([^"]*)" is requested with inputs:$`, testCtx.theFrameCountIsRequestedWithInputs)
	ctx.Step(`^the frame count (\d+) is returned without prompting$`, testCtx.theFrameCountIsReturnedWithoutPrompting)
	ctx.Step(`^the frame count (\d+) is returned$`, testCtx.theFrameCountIsReturned)
	ctx.Step(`^the frame data file records (\d+) for "([^"]*)" move "([^"]*)"$`, testCtx.theFrameDataFileRecords)
}

func (s *frameStoreContext) noFrameDataFileExists() error {
	return nil
}

func (s *frameStoreContext) theFrameDataFileContains(content string) error {
	return os.WriteFile(s.store.Path(), []byte(content), 0644)
}

func (s *frameStoreContext) aStoredFrameCount(frames int, character, move string) error {
	table := clip.FrameTable{character: {move: frames}}
	if err := s.store.Save(table); err != nil {
		return err
	}
	s.table = table
	return nil
}

func (s *frameStoreContext) theFrameTableIsLoaded() error {
	table, reset, err := s.store.Load()
	if err != nil {
		return err
	}
	s.table = table
	s.reset = reset
	return nil
}

func (s *frameStoreContext) theFrameTableIsEmpty() error {
	if len(s.table) != 0 {
		return fmt.Errorf("table is not empty: %v", s.table)
	}
	return nil
}

func (s *frameStoreContext) noResetIsReported() error {
	if s.reset {
		return fmt.Errorf("unexpected reset reported")
	}
	return nil
}

func (s *frameStoreContext) aResetIsReported() error {
	if !s.reset {
		return fmt.Errorf("expected a reset to be reported")
	}
	return nil
}

func (s *frameStoreContext) theFrameDataFileContainsAnEmptyTable() error {
	data, err := os.ReadFile(s.store.Path())
	if err != nil {
		return err
	}
	var table map[string]map[string]int
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("backing file is not valid JSON: %w", err)
	}
	if len(table) != 0 {
		return fmt.Errorf("backing file table is not empty: %v", table)
	}
	return nil
}

func (s *frameStoreContext) theFrameCountIsRequested(character, move string) error {
	return s.requestFrameCount(character, move, nil)
}

func (s *frameStoreContext) theFrameCountIsRequestedWithInputs(character, move string, inputs *godog.Table) error {
	var answers []string
	for _, row := range inputs.Rows {
		answers = append(answers, strings.TrimSpace(row.Cells[0].Value))
	}
	return s.requestFrameCount(character, move, answers)
}

func (s *frameStoreContext) requestFrameCount(character, move string, answers []string) error {
	if s.table == nil {
		table, _, err := s.store.Load()
		if err != nil {
			return err
		}
		s.table = table
	}

	prompter := NewMockPrompter(answers, nil)
	frames, err := s.store.EnsureFrameCount(s.table, character, move, prompter, &s.output)
	if err != nil {
		s.lastError = err
		return err
	}
	s.frames = frames
	s.prompted = prompter.inputIndex
	return nil
}

func (s *frameStoreContext) theFrameCountIsReturnedWithoutPrompting(frames int) error {
	if err := s.theFrameCountIsReturned(frames); err != nil {
		return err
	}
	if s.prompted != 0 {
		return fmt.Errorf("prompted %d times for an existing entry", s.prompted)
	}
	return nil
}

func (s *frameStoreContext) theFrameCountIsReturned(frames int) error {
	if s.frames != frames {
		return fmt.Errorf("frame count = %d, want %d", s.frames, frames)
	}
	return nil
}

func (s *frameStoreContext) theFrameDataFileRecords(frames int, character, move string) error {
	table, _, err := s.store.Load()
	if err != nil {
		return err
	}
	got, ok := table.FrameCount(character, move)
	if !ok {
		return fmt.Errorf("no persisted entry for %s/%s: %v", character, move, table)
	}
	if got != frames {
		return fmt.Errorf("persisted %s/%s = %d, want %d", character, move, got, frames)
	}
	return nil
}
