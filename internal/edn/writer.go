// Package edn reads and writes the ClojureScript data files consumed by
// the Cangjie training app.
package edn

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/pinyingen/internal/hanzi"
)

// DefaultSampleSize is the number of entries written to the sample file.
const DefaultSampleSize = 20

// Template describes the namespace wrapper around a mapping.
type Template struct {
	Namespace string // cangjie-training.pinyin
	Var       string // pinyin-dict
	Docstring string // optional
	Comment   string // optional, written as ";; <comment>" above the def
}

// FullTemplate wraps the complete dictionary.
var FullTemplate = Template{
	Namespace: "cangjie-training.pinyin",
	Var:       "pinyin-dict",
	Docstring: "Pinyin pronunciations for popular Chinese characters from go-pinyin",
}

// SampleTemplate wraps the short sample used in tests of the app.
var SampleTemplate = Template{
	Namespace: "cangjie-training.pinyin-sample",
	Var:       "pinyin-sample",
	Comment:   "Sample pinyin data for testing",
}

// Line breaks and tabs are escaped so every entry stays on one line.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape makes s safe inside a double-quoted string literal.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render writes m wrapped in t to w.
func Render(w io.Writer, t Template, m *hanzi.Mapping) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "(ns %s)\n\n", t.Namespace)
	if t.Comment != "" {
		fmt.Fprintf(bw, ";; %s\n", t.Comment)
	}
	fmt.Fprintf(bw, "(def %s\n", t.Var)
	if t.Docstring != "" {
		fmt.Fprintf(bw, "  \"%s\"\n", Escape(t.Docstring))
	}
	bw.WriteString("  {\n")

	for _, e := range m.Entries() {
		fmt.Fprintf(bw, "   \"%s\" \"%s\"\n", Escape(e.Character), Escape(e.Pinyin))
	}

	bw.WriteString("})\n")
	return bw.Flush()
}

// WriteFile renders m and replaces whatever is at path.
func WriteFile(path string, t Template, m *hanzi.Mapping) error {
	var buf bytes.Buffer
	if err := Render(&buf, t, m); err != nil {
		return fmt.Errorf("rendering %s: %w", t.Var, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
