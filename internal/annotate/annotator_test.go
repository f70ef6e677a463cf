package annotate

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/logging"
)

// stubLookup answers from a fixed table.
type stubLookup map[string][]string

func (s stubLookup) Readings(char string) ([]string, error) {
	return s[char], nil
}

func TestAnnotateHeteronymsAndDuplicates(t *testing.T) {
	a := New(stubLookup{
		"人": {"rén"},
		"书": {"shū", "shù"},
	})

	m := a.Annotate([]string{"人", "人", "书"})

	require.Equal(t, 2, m.Len())
	assert.Equal(t, []hanzi.Entry{
		{Character: "人", Pinyin: "rén"},
		{Character: "书", Pinyin: "shū/shù"},
	}, m.Entries())
}

func TestPinyinFailuresYieldUnknown(t *testing.T) {
	tests := []struct {
		name   string
		lookup Lookup
	}{
		{"empty", stubLookup{}},
		{"error", LookupFunc(func(string) ([]string, error) {
			return nil, errors.New("boom")
		})},
		{"panic", LookupFunc(func(string) ([]string, error) {
			panic("table corrupted")
		})},
		{"nil lookup", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.lookup)
			assert.NotPanics(t, func() {
				assert.Equal(t, hanzi.UnknownPinyin, a.Pinyin("书"))
			})
		})
	}
}

func TestPinyinKeepsLookupOrder(t *testing.T) {
	a := New(stubLookup{"行": {"xíng", "háng", "xíng"}})
	assert.Equal(t, "xíng/háng/xíng", a.Pinyin("行"))
}

func TestOverrides(t *testing.T) {
	calls := 0
	lookup := LookupFunc(func(string) ([]string, error) {
		calls++
		return []string{"de"}, nil
	})

	a := New(lookup, WithOverrides(map[string]string{"的": "de/dí/dì"}))
	assert.Equal(t, "de/dí/dì", a.Pinyin("的"))
	assert.Equal(t, 0, calls)
	assert.Equal(t, "de", a.Pinyin("地"))
	assert.Equal(t, 1, calls)
}

func TestChain(t *testing.T) {
	failing := LookupFunc(func(string) ([]string, error) {
		return nil, errors.New("unavailable")
	})
	primary := stubLookup{"人": {"rén"}}
	fallback := stubLookup{"人": {"ren"}, "书": {"shū"}}

	chain := Chain(failing, primary, fallback)

	got, err := chain.Readings("人")
	require.NoError(t, err)
	assert.Equal(t, []string{"rén"}, got)

	got, err = chain.Readings("书")
	require.NoError(t, err)
	assert.Equal(t, []string{"shū"}, got)

	got, err = chain.Readings("大")
	assert.EqualError(t, err, "unavailable")
	assert.Nil(t, got)

	got, err = Chain(primary).Readings("大")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAnnotateLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Output: &buf})

	chars := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		chars = append(chars, string(rune(0x4E00+i)))
	}

	m := New(stubLookup{}, WithLogger(logger)).Annotate(chars)
	assert.Equal(t, 250, m.Len())

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("Processing character 100/250: %s", string(rune(0x4E00+99))))
	assert.Contains(t, out, "Processing character 200/250")
	assert.NotContains(t, out, "Processing character 250/250")
}
