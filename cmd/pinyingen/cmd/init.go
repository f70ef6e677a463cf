package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyingen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default pinyingen configuration",
	Long: `Write the built-in defaults to a YAML config file so they can be edited.

The file is written to the given path, the --config path, or
./pinyingen.yaml, in that order. An existing file is only replaced
with --force.

Settings:
  - source, vector       where the character list is read from
  - output, sample_output the generated ClojureScript files
  - sample_size          entries in the sample file
  - dictionary, sqlite   optional dictionary input and database export
  - overrides            fixed readings for single characters`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := config.DefaultFile
	switch {
	case len(args) > 0:
		path = args[0]
	case cfgFile != "":
		path = cfgFile
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to point at your dictionary source and output paths")
	fmt.Fprintln(out, "  2. Run 'pinyingen lookup <character>' to check a reading")
	fmt.Fprintln(out, "  3. Run 'pinyingen' to generate the pinyin files")
	return nil
}
