package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyingen/internal/pipeline"
	"github.com/f3rmion/pinyingen/internal/tui"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	lookup, _, err := buildLookup(cfg, logger)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), cfg, lookup, logger)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoCharacters) {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render("No characters found. Exiting."))
		}
		return err
	}

	printSummary(cmd.OutOrStdout(), res)
	return nil
}

// printSummary reports what a run produced.
func printSummary(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, tui.TitleStyle.Render("pinyingen"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %d\n", tui.LabelStyle.Render("Characters:"), len(res.Characters))
	first := res.Characters
	if len(first) > 10 {
		first = first[:10]
	}
	fmt.Fprintf(w, "%s %s\n", tui.LabelStyle.Render("First few:"), tui.CharacterStyle.Render(strings.Join(first, " ")))
	fmt.Fprintln(w)

	fmt.Fprintln(w, tui.SubtitleStyle.Render("Sample pinyin mappings:"))
	for _, e := range res.Mapping.Head(5).Entries() {
		fmt.Fprintf(w, "  %s → %s\n", tui.CharacterStyle.Render(e.Character), tui.PinyinStyle.Render(e.Pinyin))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("Created pinyin dictionary with %d entries at %s", res.Mapping.Len(), res.Output)))
	fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("Created sample file with %d entries at %s", res.SampleSize, res.SampleOutput)))
	if res.SQLite != "" {
		fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("Exported SQLite database at %s", res.SQLite)))
	}
}
