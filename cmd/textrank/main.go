// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the textrank CLI: keyphrase and
// summary extraction for single texts, batch runs over article
// directories, and queries against stored results.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textrank/internal/logging"
	"github.com/pdiddy/textrank/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is configured in PersistentPreRunE from --log-level and --log-format.
var log = logging.Discard()

// rootCmd is the base command for the textrank CLI.
var rootCmd = &cobra.Command{
	Use:   "textrank",
	Short: "Graph-based keyphrase extraction and extractive summarization",
	Long: `textrank ranks the words and sentences of a text with weighted PageRank
over a complete edit-distance graph. The top third of the candidate words
become keyphrases (adjacent top words merge into two-word phrases) and the
ranked sentences form a 101-word summary.

Use keyphrases and summarize for single texts, batch for a directory of
articles, and store to query results saved by batch --store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log.level"), viper.GetString("log.format"), os.Stderr)
		if err != nil {
			return err
		}
		log = l
		if used := viper.ConfigFileUsed(); used != "" {
			log.WithField("file", used).Debug("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./textrank.yaml or ~/.config/textrank/textrank.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Float64("damping", types.DefaultDamping, "PageRank damping factor")
	pf.Float64("tolerance", types.DefaultTolerance, "convergence threshold on total score change")
	pf.Int("max-iterations", types.DefaultMaxIterations, "power iteration cap")
	pf.String("weight-mode", string(types.WeightDistance), "edge weights: distance or similarity")
	pf.Int("summary-words", types.DefaultSummaryWords, "summary length in words")
	pf.StringSlice("tags", types.DefaultTags, "POS tags kept as keyphrase candidates")
	pf.Bool("stem", false, "conflate inflected candidate words with Snowball stemming")
	pf.String("store-dir", "index", "result store directory")

	bindFlags(pf, map[string]string{
		"log.level":               "log-level",
		"log.format":              "log-format",
		"textrank.damping":        "damping",
		"textrank.tolerance":      "tolerance",
		"textrank.max_iterations": "max-iterations",
		"textrank.weight_mode":    "weight-mode",
		"textrank.summary_words":  "summary-words",
		"textrank.tags":           "tags",
		"textrank.stem":           "stem",
		"store.dir":               "store-dir",
	})
}

func initConfig() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("textrank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "textrank"))
		}
	}

	viper.SetEnvPrefix("TEXTRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
		}
	}
}

// textRankConfig assembles the ranking configuration from flags, config
// file, and environment.
func textRankConfig() types.TextRankConfig {
	cfg := types.TextRankConfig{
		Damping:       viper.GetFloat64("textrank.damping"),
		Tolerance:     viper.GetFloat64("textrank.tolerance"),
		MaxIterations: viper.GetInt("textrank.max_iterations"),
		WeightMode:    types.WeightMode(viper.GetString("textrank.weight_mode")),
		SummaryWords:  viper.GetInt("textrank.summary_words"),
		Tags:          viper.GetStringSlice("textrank.tags"),
		Stem:          viper.GetBool("textrank.stem"),
	}
	if !cfg.WeightMode.Valid() {
		log.WithField("weight_mode", cfg.WeightMode).Warn("unknown weight mode, using distance")
	}
	return cfg.WithDefaults()
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{Dir: viper.GetString("store.dir")}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
