package clip

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MoveDir returns the directory clips for a character/move pair are written
// to: outputRoot/<sanitizedCharacter>/<sanitizedMove>.
func MoveDir(outputRoot, character, move string) string {
	return filepath.Join(outputRoot, SanitizeLabel(character), SanitizeLabel(move))
}

// ClipFilename builds the sequential clip filename for a character/move
// pair: <sanitizedCharacter>_<sanitizedMove>_<3-digit index><ext>.
func ClipFilename(character, move string, index int, ext string) string {
	return fmt.Sprintf("%s_%s_%03d%s", SanitizeLabel(character), SanitizeLabel(move), index, ext)
}

// ClipPrefix is the filename prefix shared by every clip of a character/move
// pair, used when scanning for the next free index.
func ClipPrefix(character, move string) string {
	return fmt.Sprintf("%s_%s_", SanitizeLabel(character), SanitizeLabel(move))
}

// TrimmedFilename names a manual trim's output after its source:
// recording.mp4 becomes recording_trimmed.mp4.
func TrimmedFilename(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return name + "_trimmed" + ext
}
