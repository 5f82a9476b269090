package framestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"move-clipper/domain/clip"
)

// Errors for frame-table management
var (
	ErrEntryNotFound     = errors.New("frame table entry not found")
	ErrInvalidFrameCount = errors.New("frame count must be a positive integer")
)

// Prompter obtains missing frame counts from the operator. It is satisfied
// by the survey-backed prompter in cmd and by scripted prompters in tests.
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
}

// Store persists the character -> move -> frame-count table as a JSON file.
// The file is read once per session and rewritten in full after every
// change; concurrent sessions against the same file are unsafe (last writer
// wins).
type Store struct {
	path string
}

// NewStore creates a store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted frame table. A missing file is created empty. A
// file that fails to parse as a two-level mapping is overwritten with an
// empty table; the returned bool reports that reset so callers can warn the
// operator. Parse failures never propagate as errors.
func (s *Store) Load() (clip.FrameTable, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		table := clip.FrameTable{}
		if err := s.Save(table); err != nil {
			return nil, false, err
		}
		return table, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read frame data: %w", err)
	}

	var table clip.FrameTable
	if err := json.Unmarshal(data, &table); err != nil || table == nil {
		table = clip.FrameTable{}
		if err := s.Save(table); err != nil {
			return nil, true, err
		}
		return table, true, nil
	}

	return table, false, nil
}

// Save writes the full table back as pretty-printed JSON. Map keys are
// serialized in sorted order, so saves of equal tables are byte-identical
// and diff cleanly.
func (s *Store) Save(table clip.FrameTable) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize frame data: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write frame data: %w", err)
	}

	return nil
}

// EnsureFrameCount returns the frame count for a character/move pair,
// resolving both names against the table's stored casing. When no entry
// exists it prompts until the operator supplies a digit-only positive
// integer, stores it under the resolved keys, and persists immediately.
func (s *Store) EnsureFrameCount(table clip.FrameTable, character, move string, prompter Prompter, out io.Writer) (int, error) {
	charKey := table.ResolveCharacter(character)
	if table[charKey] == nil {
		table[charKey] = clip.MoveTable{}
	}
	moveKey := table.ResolveMove(charKey, move)

	if frames, ok := table.FrameCount(charKey, moveKey); ok {
		return frames, nil
	}

	message := fmt.Sprintf("Frame count for '%s' move '%s' (integer frames at 60fps):", charKey, moveKey)
	for {
		answer, err := prompter.Input(message, "")
		if err != nil {
			return 0, fmt.Errorf("prompt cancelled: %w", err)
		}

		frames, ok := parseFrameCount(strings.TrimSpace(answer))
		if !ok {
			if strings.TrimSpace(answer) == "" {
				fmt.Fprintln(out, "Frame count is required to continue.")
			} else {
				fmt.Fprintln(out, "Please enter a positive integer.")
			}
			continue
		}

		table[charKey][moveKey] = frames
		if err := s.Save(table); err != nil {
			return 0, err
		}
		fmt.Fprintf(out, "Saved %s -> %s: %d frames.\n", charKey, moveKey, frames)
		return frames, nil
	}
}

// Set stores a frame count under the resolved character/move keys and
// persists the table. Used by the administrative CLI, not the extraction
// flow.
func (s *Store) Set(table clip.FrameTable, character, move string, frames int) (string, string, error) {
	if frames <= 0 {
		return "", "", fmt.Errorf("%w: got %d", ErrInvalidFrameCount, frames)
	}

	charKey := table.ResolveCharacter(character)
	if table[charKey] == nil {
		table[charKey] = clip.MoveTable{}
	}
	moveKey := table.ResolveMove(charKey, move)

	table[charKey][moveKey] = frames
	return charKey, moveKey, s.Save(table)
}

// RemoveMove deletes one move entry and persists the table.
func (s *Store) RemoveMove(table clip.FrameTable, character, move string) error {
	charKey := table.ResolveCharacter(character)
	moves, ok := table[charKey]
	if !ok {
		return fmt.Errorf("%w: character %q", ErrEntryNotFound, character)
	}

	moveKey := table.ResolveMove(charKey, move)
	if _, ok := moves[moveKey]; !ok {
		return fmt.Errorf("%w: move %q for character %q", ErrEntryNotFound, move, character)
	}

	delete(moves, moveKey)
	return s.Save(table)
}

// RemoveCharacter deletes a character and all of its moves, then persists
// the table.
func (s *Store) RemoveCharacter(table clip.FrameTable, character string) error {
	charKey := table.ResolveCharacter(character)
	if _, ok := table[charKey]; !ok {
		return fmt.Errorf("%w: character %q", ErrEntryNotFound, character)
	}

	delete(table, charKey)
	return s.Save(table)
}

func parseFrameCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	frames := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		frames = frames*10 + int(r-'0')
	}
	if frames <= 0 {
		return 0, false
	}
	return frames, true
}
