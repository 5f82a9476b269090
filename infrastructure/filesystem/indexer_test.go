package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func writeClipFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name      string
		character string
		move      string
		files     []string
		want      int
	}{
		{
			name:      "missing directory",
			character: "Ryu",
			move:      "Hadouken",
			files:     nil,
			want:      1,
		},
		{
			name:      "empty directory",
			character: "Ryu",
			move:      "Hadouken",
			files:     []string{},
			want:      1,
		},
		{
			name:      "gap not filled",
			character: "Ryu",
			move:      "Hadouken",
			files:     []string{"Ryu_Hadouken_001.mp4", "Ryu_Hadouken_003.mp4"},
			want:      4,
		},
		{
			name:      "case-insensitive match",
			character: "Ryu",
			move:      "Hadouken",
			files:     []string{"ryu_hadouken_007.MP4"},
			want:      8,
		},
		{
			name:      "foreign files ignored",
			character: "Ryu",
			move:      "Hadouken",
			files:     []string{"Ryu_Hadouken_002.mp4", "Ken_Hadouken_009.mp4", "notes.txt", "Ryu_Hadouken_abc.mp4"},
			want:      3,
		},
		{
			name:      "sanitized labels",
			character: "Chun Li",
			move:      "Low Kick!",
			files:     []string{"ChunLi_LowKick_011.mp4"},
			want:      12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.files != nil {
				dir := filepath.Join(root, sanitizeForTest(tt.character), sanitizeForTest(tt.move))
				writeClipFiles(t, dir, tt.files...)
			}

			ix := NewIndexer(".mp4")
			got, err := ix.NextIndex(tt.character, tt.move, root)
			if err != nil {
				t.Fatalf("NextIndex() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

// sanitizeForTest mirrors the label sanitization used for output paths so
// fixtures land where the indexer scans.
func sanitizeForTest(label string) string {
	out := ""
	for _, r := range label {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			out += string(r)
		}
	}
	return out
}

func TestNextIndexSharedSequenceOnCollision(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Ryu", "LowKick")
	writeClipFiles(t, dir, "Ryu_LowKick_005.mp4")

	ix := NewIndexer(".mp4")

	// "Low Kick" and "LowKick" sanitize identically and share one sequence.
	for _, move := range []string{"Low Kick", "LowKick"} {
		got, err := ix.NextIndex("Ryu", move, root)
		if err != nil {
			t.Fatalf("NextIndex(%q) unexpected error: %v", move, err)
		}
		if got != 6 {
			t.Errorf("NextIndex(%q) = %d, want 6", move, got)
		}
	}
}
