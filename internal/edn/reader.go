package edn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/f3rmion/pinyingen/internal/hanzi"
)

// entryRe matches a `"key" "value"` line, allowing escaped quotes.
var entryRe = regexp.MustCompile(`^\s*"((?:[^"\\]|\\.)*)"\s+"((?:[^"\\]|\\.)*)"\s*$`)

var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// Parse reads every entry line from r in file order. Lines that are not
// entries (ns form, comments, braces) are ignored.
func Parse(r io.Reader) (*hanzi.Mapping, error) {
	m := hanzi.NewMapping()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := entryRe.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		m.Set(Unescape(match[1]), Unescape(match[2]))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return m, nil
}

// ReadFile parses the file at path.
func ReadFile(path string) (*hanzi.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
