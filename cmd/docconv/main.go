// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docconv CLI. The root command
// converts one file; subcommands list formats and print the version.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/docconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a single file; see convert.go.
var rootCmd = &cobra.Command{
	Use:   "docconv",
	Short: "Document conversion tool",
	Long: `docconv converts a single document between formats:

  txt => pdf, txt => docx, pdf (text only) => txt,
  xml <=> json, csv => html

Leaving --extension blank makes a byte-for-byte copy of the input. The result
is written to --output-path (default: your Downloads folder) as
<name-file>.<extension>; an existing file with that name is overwritten.`,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docconv.yaml or ~/.config/docconv/docconv.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")

	viper.SetDefault("output_path", "")
	viper.SetDefault("verbose", false)
	d := types.DefaultPDFConfig()
	viper.SetDefault("pdf.chars_per_line", d.CharsPerLine)
	viper.SetDefault("pdf.lines_per_page", d.LinesPerPage)
	viper.SetDefault("pdf.font_size", d.FontSize)
	viper.SetDefault("pdf.line_spacing", d.LineSpacing)
	viper.SetDefault("pdf.top_y", d.TopY)
	viper.SetDefault("pdf.left_x", d.LeftX)
	viper.SetDefault("pdf.lenient_extract", d.LenientExtract)

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docconv"))
		}
	}

	viper.SetEnvPrefix("DOCCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges flags, environment, config file, and defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.PDF = cfg.PDF.WithDefaults()
	return cfg, nil
}

// newLogger returns a console logger on stderr at warn level, or debug
// level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
