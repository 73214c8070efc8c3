// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/docconv/internal/dispatch"
	"github.com/pdiddy/docconv/internal/request"
	"github.com/pdiddy/docconv/pkg/types"
)

func init() {
	rootCmd.Flags().StringP("input-path", "i", "", "input file's full path [REQUIRED]")
	rootCmd.Flags().StringP("extension", "e", "", "desired output format, e.g. txt, pdf, docx (blank copies the input)")
	rootCmd.Flags().StringP("output-path", "o", "", "output folder (default: Downloads folder)")
	rootCmd.Flags().StringP("name-file", "n", "", "output file name without extension (default: <input>-converted or <input>-copied)")
	rootCmd.Flags().Bool("lenient-extract", false, "write an empty file instead of failing when PDF text extraction fails")

	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("pdf.lenient_extract", rootCmd.Flags().Lookup("lenient-extract"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v: pass the input file with --input-path", args)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	inputPath, _ := cmd.Flags().GetString("input-path")
	extension, _ := cmd.Flags().GetString("extension")
	nameFile, _ := cmd.Flags().GetString("name-file")

	raw := request.Args{
		InputPath: inputPath,
		Extension: extension,
		OutputDir: cfg.OutputDir,
		NameFile:  nameFile,
	}
	_, err = convertFile(raw, cfg, request.DownloadsDir, logger, cmd.OutOrStdout())
	return err
}

// convertFile normalizes raw, dispatches the request, and reports success to w.
func convertFile(raw request.Args, cfg types.Config, downloads request.DirResolver, logger *zap.Logger, w io.Writer) (string, error) {
	req, err := request.Normalize(raw, downloads)
	if err != nil {
		return "", err
	}
	logger.Debug("resolved request",
		zap.String("input", req.InputPath),
		zap.String("output_dir", req.OutputDir),
		zap.String("name", req.NameFile),
		zap.Stringer("pair", req.Pair()))

	out, err := dispatch.New(cfg.PDF, logger).Dispatch(req)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Success! Wrote %s\n", out)
	return out, nil
}
