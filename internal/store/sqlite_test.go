package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/pinyingen/internal/hanzi"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out", "pinyin.db")

	m := hanzi.NewMapping()
	m.Set("的", "de/dí/dì")
	m.Set("一", "yī")
	m.Set("书", hanzi.UnknownPinyin)

	require.NoError(t, Save(ctx, path, m))

	got, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), got.Entries())
}

func TestSaveReplacesRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pinyin.db")

	first := hanzi.NewMapping()
	first.Set("人", "rén")
	first.Set("书", "shū")
	require.NoError(t, Save(ctx, path, first))

	second := hanzi.NewMapping()
	second.Set("大", "dà")
	require.NoError(t, Save(ctx, path, second))

	got, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"大"}, got.Keys())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
