package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyingen/internal/edn"
	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/store"
	"github.com/f3rmion/pinyingen/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarise a generated pinyin file",
	Long: `Read a generated pinyin.cljs (or a SQLite export ending in .db,
.sqlite or .sqlite3) and show:
  - number of entries
  - number of heteronyms and unknown characters
  - the first entries

Without an argument the configured output file is inspected.

Example:
  pinyingen inspect src/main/cangjie_training/pinyin.cljs
  pinyingen inspect out/pinyin.db --limit 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

var inspectLimit int

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 10, "Number of entries to show")
}

// targetFile returns the file argument or the configured output.
func targetFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Output, nil
}

// loadMapping reads an EDN file or a SQLite export, picked by extension.
func loadMapping(ctx context.Context, path string) (*hanzi.Mapping, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return store.Load(ctx, path)
	default:
		return edn.ReadFile(path)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, err := targetFile(args)
	if err != nil {
		return err
	}

	m, err := loadMapping(cmd.Context(), path)
	if err != nil {
		return err
	}

	var heteronyms, unknown int
	for _, e := range m.Entries() {
		if e.IsHeteronym() {
			heteronyms++
		}
		if e.IsUnknown() {
			unknown++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n\n", tui.LabelStyle.Render("File:"), path)
	fmt.Fprintf(out, "  Entries:    %d\n", m.Len())
	fmt.Fprintf(out, "  Heteronyms: %d\n", heteronyms)
	fmt.Fprintf(out, "  Unknown:    %d\n", unknown)
	fmt.Fprintln(out)

	head := m.Head(inspectLimit)
	fmt.Fprintf(out, "First %d entries:\n", head.Len())
	for i, e := range head.Entries() {
		fmt.Fprintf(out, "  %3d  %s  %s\n", i+1, tui.CharacterStyle.Render(e.Character), tui.PinyinStyle.Render(e.Pinyin))
	}
	return nil
}
