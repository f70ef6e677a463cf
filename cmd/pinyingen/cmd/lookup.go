package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyingen/internal/annotate"
	"github.com/f3rmion/pinyingen/internal/dict"
	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/pinyin"
	"github.com/f3rmion/pinyingen/internal/tui"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <characters>",
	Short: "Show the pinyin pinyingen would write for characters",
	Long: `Look up Chinese characters and display:
  - the pinyin string written to pinyin.cljs
  - each reading split into initial, final and tone

Example:
  pinyingen lookup 好
  pinyingen lookup 中国人 --dictionary data/dictionary.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("dictionary", "", "Make Me a Hanzi dictionary.txt consulted before go-pinyin")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("dictionary"); path != "" {
		cfg.Dictionary = path
	}

	logger := newLogger(cmd)
	lookup, d, err := buildLookup(cfg, logger)
	if err != nil {
		return err
	}

	annotator := annotate.New(lookup,
		annotate.WithOverrides(cfg.Overrides),
		annotate.WithLogger(logger),
	)
	parser := pinyin.NewParser()
	out := cmd.OutOrStdout()

	for _, arg := range args {
		for _, r := range arg {
			if !hanzi.IsCJK(r) {
				logger.Warn("skipping non-CJK character", "char", string(r))
				continue
			}
			printLookup(out, string(r), annotator.Pinyin(string(r)), parser, d)
		}
	}
	return nil
}

// printLookup writes one character's readings as an aligned table.
func printLookup(w io.Writer, char, reading string, parser *pinyin.Parser, d *dict.Dictionary) {
	fmt.Fprintf(w, "%s %s  %s\n", tui.LabelStyle.Render("Character:"), tui.CharacterStyle.Render(char), tui.PinyinStyle.Render(reading))

	if d != nil {
		if entry := d.Lookup(char); entry != nil && entry.Definition != "" {
			fmt.Fprintf(w, "  %s %s\n", tui.LabelStyle.Render("Meaning:"), entry.Definition)
		}
	}

	if reading == hanzi.UnknownPinyin {
		fmt.Fprintln(w, "  Pinyin: (not found)")
		fmt.Fprintln(w)
		return
	}

	rows := [][]string{{"Pinyin", "Initial", "Final", "Tone"}}
	for _, r := range hanzi.SplitReadings(reading) {
		s := parser.Parse(r)
		rows = append(rows, []string{s.Full, displayPart(s.Initial), displayPart(s.Final), strconv.Itoa(int(s.Tone))})
	}
	writeTable(w, rows)
	fmt.Fprintln(w)
}

// writeTable left-aligns columns by display width.
func writeTable(w io.Writer, rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		fmt.Fprint(w, " ")
		for i, cell := range row {
			fmt.Fprint(w, " ", runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(w)
	}
}

func displayPart(s string) string {
	if s == "" {
		return "Ø"
	}
	return s
}
