// Package pinyin wraps go-pinyin for tone-marked, heteronym-aware lookups
// and splits syllables into initial, final and tone.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
	"golang.org/x/text/unicode/norm"
)

// Tone represents the four tones of Mandarin plus neutral tone.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // ā
	Tone2       Tone = 2 // á
	Tone3       Tone = 3 // ǎ
	Tone4       Tone = 4 // à
	Tone5       Tone = 5 // neutral
)

// Parser looks up pinyin readings for characters.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a parser returning every reading with tone marks.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // zhōng
	args.Heteronym = true
	return &Parser{args: args}
}

// Syllable is a single pinyin reading split into its parts.
type Syllable struct {
	Full    string // hǎo
	Initial string // h
	Final   string // ao
	Tone    Tone
}

// GetPinyin returns all readings for a character in go-pinyin's order,
// or nil when the character is unknown.
func (p *Parser) GetPinyin(char string) []string {
	result := gopinyin.Pinyin(char, p.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return nil
	}
	readings := make([]string, len(result[0]))
	for i, r := range result[0] {
		readings[i] = norm.NFC.String(r)
	}
	return readings
}

// Readings implements annotate.Lookup. go-pinyin never fails; unknown
// characters yield an empty result.
func (p *Parser) Readings(char string) ([]string, error) {
	return p.GetPinyin(char), nil
}

// Parse splits a tone-marked syllable.
func (p *Parser) Parse(pinyin string) Syllable {
	s := Syllable{Full: pinyin}
	var bare string
	s.Tone, bare = extractTone(pinyin)
	s.Initial, s.Final = splitSyllable(bare)
	return s
}

// ParseChar returns the split of every reading of char.
func (p *Parser) ParseChar(char string) []Syllable {
	readings := p.GetPinyin(char)
	if readings == nil {
		return nil
	}

	out := make([]Syllable, len(readings))
	for i, r := range readings {
		out[i] = p.Parse(r)
	}
	return out
}

var toneMarks = map[rune]struct {
	base rune
	tone Tone
}{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
	'ḿ': {'m', Tone2}, 'ń': {'n', Tone2}, 'ň': {'n', Tone3}, 'ǹ': {'n', Tone4},
}

// extractTone returns the tone and the syllable without tone marks.
func extractTone(pinyin string) (Tone, string) {
	tone := ToneUnknown
	var b strings.Builder

	for _, r := range norm.NFC.String(pinyin) {
		if mark, ok := toneMarks[r]; ok {
			b.WriteRune(mark.base)
			tone = mark.tone
		} else {
			b.WriteRune(r)
		}
	}

	if tone == ToneUnknown && b.Len() > 0 {
		tone = Tone5
	}
	return tone, b.String()
}

// Initials ordered so two-letter initials match before their prefixes.
var initials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "r", "z", "c", "s", "y", "w",
}

// splitSyllable splits toneless pinyin into initial and final.
// Syllabic nasals (m, n, ng) and vowel-initial syllables have no initial.
func splitSyllable(bare string) (initial, final string) {
	bare = strings.ToLower(bare)
	switch bare {
	case "m", "n", "ng", "hm", "hng":
		if strings.HasPrefix(bare, "h") {
			return "h", bare[1:]
		}
		return "", bare
	}

	for _, in := range initials {
		if strings.HasPrefix(bare, in) && len(bare) > len(in) {
			return in, bare[len(in):]
		}
	}
	return "", bare
}
