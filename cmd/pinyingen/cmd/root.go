// Package cmd contains all CLI commands for pinyingen.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/pinyingen/internal/annotate"
	"github.com/f3rmion/pinyingen/internal/config"
	"github.com/f3rmion/pinyingen/internal/dict"
	"github.com/f3rmion/pinyingen/internal/edn"
	"github.com/f3rmion/pinyingen/internal/extract"
	"github.com/f3rmion/pinyingen/internal/logging"
	"github.com/f3rmion/pinyingen/internal/pinyin"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinyingen",
	Short: "Generate pinyin data for the Cangjie training app",
	Long: `pinyingen reads the popular-chinese-chars vector from the Cangjie
training dictionary, looks up the pinyin of every character and writes
two ClojureScript data files:

  - pinyin.cljs         the full character → pinyin map
  - pinyin_sample.cljs  the first 20 entries, for tests

Characters with several readings are written as "shū/shù". Characters
without a known reading are written as "?".

Running 'pinyingen' without a subcommand generates the files using the
defaults, ./pinyingen.yaml, PINYINGEN_* environment variables and flags,
in increasing order of precedence.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// configFlags maps viper keys to the config fields they override.
var configFlags = []struct {
	key   string
	usage string
	def   string
	field func(*config.Config) *string
}{
	{"source", "dictionary source file", config.DefaultSource, func(c *config.Config) *string { return &c.Source }},
	{"vector", "name of the character vector", extract.DefaultVector, func(c *config.Config) *string { return &c.Vector }},
	{"output", "full pinyin dictionary output", config.DefaultOutput, func(c *config.Config) *string { return &c.Output }},
	{"sample-output", "sample output", config.DefaultSampleOutput, func(c *config.Config) *string { return &c.SampleOutput }},
	{"dictionary", "Make Me a Hanzi dictionary.txt consulted before go-pinyin", "", func(c *config.Config) *string { return &c.Dictionary }},
	{"sqlite", "also export the mapping to this SQLite database", "", func(c *config.Config) *string { return &c.SQLite }},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	flags := rootCmd.Flags()
	for _, f := range configFlags {
		flags.String(f.key, f.def, f.usage)
		viper.BindPFlag(f.key, flags.Lookup(f.key))
	}
	flags.Int("sample-size", edn.DefaultSampleSize, "number of entries in the sample file")
	viper.BindPFlag("sample-size", flags.Lookup("sample-size"))
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("PINYINGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file and applies env and flag overrides.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	required := path != ""
	if path == "" {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	for _, f := range configFlags {
		if viper.IsSet(f.key) {
			*f.field(cfg) = viper.GetString(f.key)
		}
	}
	if viper.IsSet("sample-size") {
		n, err := intSetting("sample-size", viper.Get("sample-size"))
		if err != nil {
			return nil, err
		}
		cfg.SampleSize = n
	}

	return cfg, cfg.Validate()
}

// intSetting converts a flag or env value, rejecting malformed numbers.
func intSetting(key string, v any) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, fmt.Sprint(v), err)
	}
	return n, nil
}

// newLogger builds the logger for a command, writing to its stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := "info"
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: viper.GetString("log-format"),
		Output: cmd.ErrOrStderr(),
	})
}

// buildLookup returns go-pinyin, preceded by the dictionary if configured.
func buildLookup(cfg *config.Config, logger *slog.Logger) (annotate.Lookup, *dict.Dictionary, error) {
	parser := pinyin.NewParser()
	if cfg.Dictionary == "" {
		return parser, nil, nil
	}

	d := dict.NewDictionary()
	if err := d.LoadFromFile(cfg.Dictionary); err != nil {
		return nil, nil, err
	}
	logger.Info("loaded dictionary", "path", cfg.Dictionary, "entries", d.Size(), "skipped", d.Skipped())

	return annotate.Chain(d, parser), d, nil
}
