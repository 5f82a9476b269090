package clip

import "sort"

// MoveTable maps a move name, in its originally stored casing, to the move's
// duration in frames at the reference frame rate.
type MoveTable map[string]int

// FrameTable maps a character name, in its originally stored casing, to that
// character's moves. No two keys at either level normalize to the same
// comparison key; lookups go through ResolveCharacter/ResolveMove so casing
// and spacing differences collapse onto the stored entry.
type FrameTable map[string]MoveTable

// ResolveCharacter returns the stored character key whose normalized form
// matches name, or name unchanged when no entry matches. Callers may insert
// under the returned key either way.
func (t FrameTable) ResolveCharacter(name string) string {
	target := NormalizeKey(name)
	for key := range t {
		if NormalizeKey(key) == target {
			return key
		}
	}
	return name
}

// ResolveMove returns the stored move key under character whose normalized
// form matches name, or name unchanged when no entry matches.
func (t FrameTable) ResolveMove(character, name string) string {
	target := NormalizeKey(name)
	for key := range t[character] {
		if NormalizeKey(key) == target {
			return key
		}
	}
	return name
}

// FrameCount returns the stored frame count for the resolved character and
// move keys, with ok reporting whether an entry exists.
func (t FrameTable) FrameCount(character, move string) (int, bool) {
	frames, ok := t[character][move]
	return frames, ok
}

// Moves returns the stored move names for a character, sorted.
func (t FrameTable) Moves(character string) []string {
	moves := make([]string, 0, len(t[character]))
	for name := range t[character] {
		moves = append(moves, name)
	}
	sort.Strings(moves)
	return moves
}

// Characters returns the stored character names, sorted.
func (t FrameTable) Characters() []string {
	characters := make([]string, 0, len(t))
	for name := range t {
		characters = append(characters, name)
	}
	sort.Strings(characters)
	return characters
}
