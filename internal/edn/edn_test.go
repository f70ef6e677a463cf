package edn

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/pinyingen/internal/hanzi"
)

func newMapping(pairs ...string) *hanzi.Mapping {
	m := hanzi.NewMapping()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func TestRenderFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FullTemplate, newMapping("人", "rén", "书", "shū/shù")))

	want := `(ns cangjie-training.pinyin)

(def pinyin-dict
  "Pinyin pronunciations for popular Chinese characters from go-pinyin"
  {
   "人" "rén"
   "书" "shū/shù"
})
`
	assert.Equal(t, want, buf.String())
}

func TestRenderSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, SampleTemplate, newMapping("人", "rén")))

	want := `(ns cangjie-training.pinyin-sample)

;; Sample pinyin data for testing
(def pinyin-sample
  {
   "人" "rén"
})
`
	assert.Equal(t, want, buf.String())
}

func TestRenderEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, SampleTemplate, newMapping("人", `r"én\`)))
	assert.Contains(t, buf.String(), `   "人" "r\"én\\"`)
}

func TestRoundTrip(t *testing.T) {
	original := newMapping(
		"的", "de/dí/dì",
		"一", "yī",
		"人", "rén",
		"怪", `gu"ài`,
		"书", hanzi.UnknownPinyin,
		"斜", `xié\`,
		"行", "xíng\tháng",
		"长", "cháng\nzhǎng",
		"乐", "lè\r\nyuè",
		"还", `hái\nhuán`,
	)

	for _, tmpl := range []Template{FullTemplate, SampleTemplate} {
		t.Run(tmpl.Var, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tmpl, original))

			parsed, err := Parse(&buf)
			require.NoError(t, err)
			assert.Equal(t, original.Entries(), parsed.Entries())
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "rén", "rén"},
		{"quote", `gu"ài`, `gu\"ài`},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "de\ndí", `de\ndí`},
		{"carriage return", "de\r\ndí", `de\r\ndí`},
		{"tab", "de\tdí", `de\tdí`},
		{"backslash before n", `de\n`, `de\\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n")
			assert.Equal(t, tt.in, Unescape(got))
		})
	}
}

func TestParseIgnoresNonEntryLines(t *testing.T) {
	input := `(ns x)
;; "a" "b" in a comment is not an entry because of the prefix
(def y
  "single docstring"
  {
   "人" "rén"
})
`
	m, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"人"}, m.Keys())
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pinyin.cljs")

	require.NoError(t, WriteFile(path, FullTemplate, newMapping("人", "rén", "书", "shū")))
	require.NoError(t, WriteFile(path, FullTemplate, newMapping("大", "dà")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "人")

	m, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"大"}, m.Keys())
}

func TestSampleIsPrefix(t *testing.T) {
	full := hanzi.NewMapping()
	for i := 0; i < 35; i++ {
		full.Set(string(rune(0x4E00+i)), "x")
	}

	dir := t.TempDir()
	samplePath := filepath.Join(dir, "sample.cljs")
	require.NoError(t, WriteFile(samplePath, SampleTemplate, full.Head(DefaultSampleSize)))

	sample, err := ReadFile(samplePath)
	require.NoError(t, err)
	require.Equal(t, DefaultSampleSize, sample.Len())
	assert.Equal(t, full.Keys()[:DefaultSampleSize], sample.Keys())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.cljs"))
	assert.Error(t, err)
}
