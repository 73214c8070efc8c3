// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package request turns raw CLI arguments into a resolved ConversionRequest.
// It only inspects filesystem metadata; file contents are never read.
package request

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/pdiddy/docconv/pkg/types"
)

var (
	ErrMissingInput      = errors.New("please enter the path of input file")
	ErrInputNotFound     = errors.New("input file not found")
	ErrInputIsDir        = errors.New("input path is a directory")
	ErrOutputDirNotFound = errors.New("output folder not found")
	ErrNoDownloadsDir    = errors.New("specify output folder (unable to find default Downloads folder)")
	ErrInvalidExtension  = errors.New("invalid extension")
)

const (
	suffixCopied    = "-copied"
	suffixConverted = "-converted"
)

// Args holds the raw, unvalidated CLI fields. Empty strings mean "not supplied".
type Args struct {
	InputPath string
	Extension string
	OutputDir string
	NameFile  string
}

// DirResolver returns a default output directory.
type DirResolver func() (string, error)

// DownloadsDir resolves the current user's downloads directory using the
// platform conventions (XDG user dirs on Linux, Known Folders on Windows,
// ~/Downloads on macOS).
func DownloadsDir() (string, error) {
	dir := xdg.UserDirs.Download
	if dir == "" {
		return "", errors.New("no downloads directory configured")
	}
	return dir, nil
}

// Normalize validates args and fills in defaults. When args.OutputDir is
// empty the directory comes from downloads.
func Normalize(args Args, downloads DirResolver) (types.ConversionRequest, error) {
	if strings.TrimSpace(args.InputPath) == "" {
		return types.ConversionRequest{}, ErrMissingInput
	}

	info, err := os.Stat(args.InputPath)
	if err != nil {
		return types.ConversionRequest{}, fmt.Errorf("%w: %s", ErrInputNotFound, args.InputPath)
	}
	if info.IsDir() {
		return types.ConversionRequest{}, fmt.Errorf("%w: %s", ErrInputIsDir, args.InputPath)
	}

	outputDir := args.OutputDir
	if outputDir != "" {
		if !isDir(outputDir) {
			return types.ConversionRequest{}, fmt.Errorf("%w: %s", ErrOutputDirNotFound, outputDir)
		}
	} else {
		outputDir, err = resolveDefault(downloads)
		if err != nil {
			return types.ConversionRequest{}, err
		}
	}

	inFormat := types.FormatFromPath(args.InputPath)
	outFormat := inFormat
	if args.Extension != "" {
		outFormat, err = types.ParseFormat(args.Extension)
		if err != nil {
			return types.ConversionRequest{}, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
		}
	}
	if !inFormat.Valid() || !outFormat.Valid() {
		return types.ConversionRequest{}, fmt.Errorf("%w: %s => %s", ErrInvalidExtension, displayTag(inFormat), displayTag(outFormat))
	}

	name := args.NameFile
	if name == "" {
		name = deriveName(args.InputPath, inFormat == outFormat)
	}

	return types.ConversionRequest{
		InputPath:    args.InputPath,
		InputFormat:  inFormat,
		OutputDir:    outputDir,
		OutputFormat: outFormat,
		NameFile:     name,
	}, nil
}

func resolveDefault(downloads DirResolver) (string, error) {
	if downloads == nil {
		return "", ErrNoDownloadsDir
	}
	dir, err := downloads()
	if err != nil || dir == "" {
		return "", ErrNoDownloadsDir
	}
	if !isDir(dir) {
		return "", fmt.Errorf("%w: %s", ErrNoDownloadsDir, dir)
	}
	return dir, nil
}

// deriveName returns the input stem suffixed with -copied or -converted.
func deriveName(inputPath string, identity bool) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if identity {
		return stem + suffixCopied
	}
	return stem + suffixConverted
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func displayTag(f types.Format) string {
	if f == "" {
		return "(none)"
	}
	return string(f)
}
