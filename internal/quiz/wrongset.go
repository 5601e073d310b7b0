package quiz

import "github.com/notedthegoat/toeicword-practice-app/internal/model"

// WrongSet holds words answered incorrectly, unique by word.
type WrongSet struct {
	entries []model.WordEntry
}

// Add inserts e unless its word is already present. It reports whether e was added.
func (s *WrongSet) Add(e model.WordEntry) bool {
	if s.Contains(e.Word) {
		return false
	}
	s.entries = append(s.entries, e)
	return true
}

// Remove drops the entry for word. It reports whether anything was removed.
func (s *WrongSet) Remove(word string) bool {
	for i, e := range s.entries {
		if e.Word == word {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether word is in the set.
func (s *WrongSet) Contains(word string) bool {
	for _, e := range s.entries {
		if e.Word == word {
			return true
		}
	}
	return false
}

// Len returns the number of words in the set.
func (s *WrongSet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the set's entries.
func (s *WrongSet) Entries() []model.WordEntry {
	out := make([]model.WordEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear empties the set.
func (s *WrongSet) Clear() {
	s.entries = nil
}
