// Package hanzi provides the core types shared by the extractor, annotator
// and writers: characters, pinyin readings and the ordered mapping between them.
package hanzi

import "strings"

const (
	// CJKStart and CJKEnd bound the CJK Unified Ideographs block.
	CJKStart rune = 0x4E00
	CJKEnd   rune = 0x9FFF

	// Separator joins alternative readings of a heteronym (e.g. "shū/shù").
	Separator = "/"

	// UnknownPinyin is stored for characters the lookup could not answer.
	UnknownPinyin = "?"
)

// IsCJK reports whether r is in the CJK Unified Ideographs block.
func IsCJK(r rune) bool {
	return r >= CJKStart && r <= CJKEnd
}

// IsCharacter reports whether s is exactly one CJK ideograph.
func IsCharacter(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && IsCJK(runes[0])
}

// JoinReadings joins readings with Separator, keeping their order.
func JoinReadings(readings []string) string {
	return strings.Join(readings, Separator)
}

// SplitReadings is the inverse of JoinReadings.
func SplitReadings(pinyin string) []string {
	if pinyin == "" {
		return nil
	}
	return strings.Split(pinyin, Separator)
}

// Entry is a single character and its pinyin string.
type Entry struct {
	Character string `json:"character" yaml:"character"`
	Pinyin    string `json:"pinyin" yaml:"pinyin"`
}

// IsHeteronym reports whether the entry carries more than one reading.
func (e Entry) IsHeteronym() bool {
	return strings.Contains(e.Pinyin, Separator)
}

// IsUnknown reports whether the lookup failed for this entry.
func (e Entry) IsUnknown() bool {
	return e.Pinyin == UnknownPinyin
}

// Mapping is an insertion-ordered character → pinyin map.
// Entries are never removed; the first Set of a key fixes its position.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set stores pinyin for char. Re-setting a key updates the value in place.
func (m *Mapping) Set(char, pinyin string) {
	if _, ok := m.values[char]; !ok {
		m.keys = append(m.keys, char)
	}
	m.values[char] = pinyin
}

// Get returns the pinyin stored for char.
func (m *Mapping) Get(char string) (string, bool) {
	v, ok := m.values[char]
	return v, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the characters in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Entries returns all entries in insertion order.
func (m *Mapping) Entries() []Entry {
	entries := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		entries[i] = Entry{Character: k, Pinyin: m.values[k]}
	}
	return entries
}

// Head returns a new mapping holding at most the first n entries.
func (m *Mapping) Head(n int) *Mapping {
	if n > len(m.keys) {
		n = len(m.keys)
	}
	if n < 0 {
		n = 0
	}
	head := NewMapping()
	for _, k := range m.keys[:n] {
		head.Set(k, m.values[k])
	}
	return head
}
