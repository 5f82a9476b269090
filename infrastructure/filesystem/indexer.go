package filesystem

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"move-clipper/domain/clip"
)

// Indexer derives the next free sequential clip index for a character/move
// pair by scanning the pair's output directory. The filesystem is the only
// source of truth; there is no persisted counter, so the scheme survives
// restarts as long as the naming convention holds.
//
// Characters or moves whose sanitized labels collide (e.g. "Low Kick" and
// "LowKick") land in the same directory and share one index sequence.
type Indexer struct {
	ext string
}

// NewIndexer creates an indexer for clips with the given output extension,
// e.g. ".mp4".
func NewIndexer(ext string) *Indexer {
	return &Indexer{ext: ext}
}

// NextIndex returns the next sequential index for a character/move pair,
// starting at 1. Gaps in the existing sequence are not reused: the result is
// one past the highest index found.
func (ix *Indexer) NextIndex(character, move, outputRoot string) (int, error) {
	moveDir := clip.MoveDir(outputRoot, character, move)

	entries, err := os.ReadDir(moveDir)
	if os.IsNotExist(err) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", moveDir, err)
	}

	pattern, err := regexp.Compile("(?i)^" + regexp.QuoteMeta(clip.ClipPrefix(character, move)) + `(\d+)` + regexp.QuoteMeta(ix.ext) + "$")
	if err != nil {
		return 0, fmt.Errorf("failed to build index pattern: %w", err)
	}

	maxIndex := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := pattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}
		index, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		if index > maxIndex {
			maxIndex = index
		}
	}

	return maxIndex + 1, nil
}
