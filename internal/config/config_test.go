package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "src/main/cangjie_training/dictionary.cljs", cfg.Source)
	assert.Equal(t, "popular-chinese-chars", cfg.Vector)
	assert.Equal(t, "src/main/cangjie_training/pinyin.cljs", cfg.Output)
	assert.Equal(t, "src/main/cangjie_training/pinyin_sample.cljs", cfg.SampleOutput)
	assert.Equal(t, 20, cfg.SampleSize)
	assert.Empty(t, cfg.SQLite)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `source: data/chars.cljs
sample_size: 5
sqlite: out/pinyin.db
overrides:
  的: de/dí/dì
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "data/chars.cljs", cfg.Source)
	assert.Equal(t, 5, cfg.SampleSize)
	assert.Equal(t, "out/pinyin.db", cfg.SQLite)
	assert.Equal(t, map[string]string{"的": "de/dí/dì"}, cfg.Overrides)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0644))

	_, err := Load(path, false)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Dictionary = "data/dictionary.txt"
	cfg.Overrides = map[string]string{"行": "xíng/háng"}

	require.NoError(t, Save(path, cfg))

	got, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = "" }},
		{"empty vector", func(c *Config) { c.Vector = "" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"empty sample output", func(c *Config) { c.SampleOutput = "" }},
		{"negative sample size", func(c *Config) { c.SampleSize = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
