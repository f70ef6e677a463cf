package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyingen/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse a generated pinyin file in the TUI",
	Long: `Load a generated pinyin.cljs (or SQLite export) and browse it in an
interactive terminal UI.

Controls:
  ↑/↓ or j/k    Navigate entries
  /             Search by character or pinyin (tone marks optional)
  f             Cycle filter: all, heteronyms, unknown
  c             Clear search and filter
  q, Esc        Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path, err := targetFile(args)
	if err != nil {
		return err
	}

	m, err := loadMapping(cmd.Context(), path)
	if err != nil {
		return err
	}
	if m.Len() == 0 {
		return fmt.Errorf("no entries in %s", path)
	}

	p := tea.NewProgram(
		tui.NewBrowser(filepath.Base(path), m),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
