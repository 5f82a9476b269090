package framestore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"move-clipper/domain/clip"
)

// scriptedPrompter returns queued answers in order
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Input(message string, defaultValue string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return "", errors.New("no scripted answer left")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "frame_data.json"))
}

func TestLoadMissingFileCreatesEmpty(t *testing.T) {
	store := newTestStore(t)

	table, reset, err := store.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if reset {
		t.Error("Load() on a missing file should not report a reset")
	}
	if len(table) != 0 {
		t.Errorf("Load() = %v, want empty table", table)
	}

	// The backing file now exists and holds an empty mapping.
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("backing file was not created: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("backing file = %q, want empty JSON object", data)
	}
}

func TestLoadCorruptFileResets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: "{not json"},
		{name: "not a mapping", content: `[1, 2, 3]`},
		{name: "json null", content: `null`},
		{name: "wrong value type", content: `{"Ryu": "forty"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := os.WriteFile(store.Path(), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			table, reset, err := store.Load()
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !reset {
				t.Error("Load() should report a reset for a corrupt file")
			}
			if len(table) != 0 {
				t.Errorf("Load() = %v, want empty table", table)
			}

			// A second load sees a valid empty file.
			table, reset, err = store.Load()
			if err != nil || reset || len(table) != 0 {
				t.Errorf("reload after reset = (%v, %v, %v), want empty table, no reset", table, reset, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)

	table := clip.FrameTable{
		"Ryu":     {"Hadouken": 40, "Shoryuken": 35},
		"Chun Li": {"Lightning Legs": 52},
	}
	if err := store.Save(table); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, reset, err := store.Load()
	if err != nil || reset {
		t.Fatalf("Load() = reset %v, err %v", reset, err)
	}
	if loaded["Ryu"]["Hadouken"] != 40 || loaded["Chun Li"]["Lightning Legs"] != 52 {
		t.Errorf("round trip lost entries: %v", loaded)
	}

	// Saves are deterministic: saving the loaded table reproduces the file.
	before, _ := os.ReadFile(store.Path())
	if err := store.Save(loaded); err != nil {
		t.Fatal(err)
	}
	after, _ := os.ReadFile(store.Path())
	if !bytes.Equal(before, after) {
		t.Error("re-saving an unchanged table altered the file")
	}
}

func TestEnsureFrameCountExisting(t *testing.T) {
	store := newTestStore(t)
	table := clip.FrameTable{"Ryu": {"Hadouken": 40}}

	prompter := &scriptedPrompter{}
	var out bytes.Buffer

	// Case/spacing variants resolve onto the stored entry without prompting.
	frames, err := store.EnsureFrameCount(table, "ryu", "HADOUKEN", prompter, &out)
	if err != nil {
		t.Fatalf("EnsureFrameCount() unexpected error: %v", err)
	}
	if frames != 40 {
		t.Errorf("EnsureFrameCount() = %d, want 40", frames)
	}
	if len(prompter.asked) != 0 {
		t.Errorf("prompted %d times for an existing entry", len(prompter.asked))
	}
}

func TestEnsureFrameCountPromptsAndPersists(t *testing.T) {
	store := newTestStore(t)
	table := clip.FrameTable{}

	prompter := &scriptedPrompter{answers: []string{"", "abc", "-3", "0", "38"}}
	var out bytes.Buffer

	frames, err := store.EnsureFrameCount(table, "Ken", "Tatsumaki", prompter, &out)
	if err != nil {
		t.Fatalf("EnsureFrameCount() unexpected error: %v", err)
	}
	if frames != 38 {
		t.Errorf("EnsureFrameCount() = %d, want 38", frames)
	}
	if table["Ken"]["Tatsumaki"] != 38 {
		t.Errorf("table not updated: %v", table)
	}
	if len(prompter.answers) != 0 {
		t.Errorf("expected all scripted answers consumed, %d left", len(prompter.answers))
	}

	output := out.String()
	if !strings.Contains(output, "Frame count is required") {
		t.Errorf("missing empty-input message in %q", output)
	}
	if !strings.Contains(output, "positive integer") {
		t.Errorf("missing invalid-input message in %q", output)
	}
	if !strings.Contains(output, "Saved Ken -> Tatsumaki: 38 frames.") {
		t.Errorf("missing confirmation in %q", output)
	}

	// The new entry was persisted immediately.
	loaded, _, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded["Ken"]["Tatsumaki"] != 38 {
		t.Errorf("persisted table = %v, want Ken/Tatsumaki = 38", loaded)
	}
}

func TestEnsureFrameCountResolvesStoredCasing(t *testing.T) {
	store := newTestStore(t)
	table := clip.FrameTable{"Chun Li": {}}

	prompter := &scriptedPrompter{answers: []string{"52"}}
	var out bytes.Buffer

	if _, err := store.EnsureFrameCount(table, "chunli", "Lightning Legs", prompter, &out); err != nil {
		t.Fatal(err)
	}

	// The count lands under the stored character casing, not the query.
	if _, ok := table["chunli"]; ok {
		t.Error("entry stored under query casing instead of resolved key")
	}
	if table["Chun Li"]["Lightning Legs"] != 52 {
		t.Errorf("table = %v, want Chun Li/Lightning Legs = 52", table)
	}
}

func TestSet(t *testing.T) {
	store := newTestStore(t)
	table := clip.FrameTable{"Ryu": {"Hadouken": 40}}

	charKey, moveKey, err := store.Set(table, "RYU", "hadouken", 44)
	if err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if charKey != "Ryu" || moveKey != "Hadouken" {
		t.Errorf("Set() resolved keys = (%q, %q), want (Ryu, Hadouken)", charKey, moveKey)
	}
	if table["Ryu"]["Hadouken"] != 44 {
		t.Errorf("Set() did not update the stored entry: %v", table)
	}

	if _, _, err := store.Set(table, "Ryu", "Hadouken", 0); !errors.Is(err, ErrInvalidFrameCount) {
		t.Errorf("Set() with zero count error = %v, want ErrInvalidFrameCount", err)
	}
	if _, _, err := store.Set(table, "Ryu", "Hadouken", -2); !errors.Is(err, ErrInvalidFrameCount) {
		t.Errorf("Set() with negative count error = %v, want ErrInvalidFrameCount", err)
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	table := clip.FrameTable{
		"Ryu": {"Hadouken": 40, "Shoryuken": 35},
	}
	if err := store.Save(table); err != nil {
		t.Fatal(err)
	}

	if err := store.RemoveMove(table, "ryu", "shoryuken"); err != nil {
		t.Fatalf("RemoveMove() unexpected error: %v", err)
	}
	if _, ok := table["Ryu"]["Shoryuken"]; ok {
		t.Error("RemoveMove() left the entry in place")
	}

	if err := store.RemoveMove(table, "Ryu", "Tatsumaki"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("RemoveMove() missing move error = %v, want ErrEntryNotFound", err)
	}

	if err := store.RemoveCharacter(table, "Ken"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("RemoveCharacter() missing character error = %v, want ErrEntryNotFound", err)
	}

	if err := store.RemoveCharacter(table, "Ryu"); err != nil {
		t.Fatalf("RemoveCharacter() unexpected error: %v", err)
	}
	loaded, _, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("persisted table after removal = %v, want empty", loaded)
	}
}
