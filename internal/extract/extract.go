// Package extract pulls the character list out of the Cangjie training
// dictionary source.
package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/f3rmion/pinyingen/internal/hanzi"
)

// DefaultVector is the name of the vector holding the popular characters.
const DefaultVector = "popular-chinese-chars"

var (
	// ErrInputNotFound is returned when the source file does not exist.
	ErrInputNotFound = errors.New("source file not found")
	// ErrNotFound is returned when the vector definition cannot be located.
	ErrNotFound = errors.New("vector not found")
	// ErrEmpty is returned when the vector holds no CJK characters.
	ErrEmpty = errors.New("no characters in vector")
)

var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// LoadFile reads path and extracts the characters of the named vector.
func LoadFile(path, vector string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	return Extract(string(data), vector)
}

// Extract returns the distinct CJK characters quoted inside the vector
// introduced by "(def <vector>", in first-seen order.
func Extract(content, vector string) ([]string, error) {
	block, ok := vectorBlock(content, "(def "+vector)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, vector)
	}

	var chars []string
	seen := make(map[string]bool)
	for _, m := range quotedRe.FindAllStringSubmatch(block, -1) {
		c := m[1]
		if !hanzi.IsCharacter(c) || seen[c] {
			continue
		}
		seen[c] = true
		chars = append(chars, c)
	}

	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, vector)
	}
	return chars, nil
}

// vectorBlock collects the lines after the marker line up to the first
// closing bracket that is not on a comment line.
func vectorBlock(content, marker string) (string, bool) {
	var captured []string
	inVector := false

	for _, line := range strings.Split(content, "\n") {
		if !inVector {
			if strings.Contains(line, marker) {
				inVector = true
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if i := strings.Index(line, "]"); i >= 0 && !strings.HasPrefix(trimmed, ";") {
			captured = append(captured, line[:i])
			break
		}
		captured = append(captured, line)
	}

	if len(captured) == 0 {
		return "", false
	}
	return strings.Join(captured, "\n"), true
}
