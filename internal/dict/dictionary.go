// Package dict loads pinyin readings from a Make Me a Hanzi dictionary.txt file.
package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
)

// Entry is the subset of a Make Me a Hanzi record used for lookups.
type Entry struct {
	Character  string   `json:"character"`
	Definition string   `json:"definition"`
	Pinyin     []string `json:"pinyin"`
}

// Dictionary maps characters to their dictionary entries.
type Dictionary struct {
	entries map[string]*Entry
	skipped int
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]*Entry),
	}
}

// LoadFromFile loads one JSON object per line from path.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	return d.Load(file)
}

// Load reads JSON lines from r. Malformed lines are counted and skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil || entry.Character == "" {
			d.skipped++
			continue
		}
		d.entries[entry.Character] = &entry
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary file: %w", err)
	}
	return nil
}

// Lookup returns the entry for char, or nil.
func (d *Dictionary) Lookup(char string) *Entry {
	return d.entries[char]
}

// Readings returns the dictionary's readings for char, or nil if absent.
func (d *Dictionary) Readings(char string) ([]string, error) {
	entry := d.entries[char]
	if entry == nil || len(entry.Pinyin) == 0 {
		return nil, nil
	}
	out := make([]string, len(entry.Pinyin))
	for i, p := range entry.Pinyin {
		out[i] = norm.NFC.String(p)
	}
	return out, nil
}

// Size returns the number of entries.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// Skipped returns the number of malformed lines seen while loading.
func (d *Dictionary) Skipped() int {
	return d.skipped
}
