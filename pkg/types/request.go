// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// ConversionRequest is the fully-resolved description of one conversion job.
// It is built once by the argument normalizer and handed by value to the
// dispatcher.
type ConversionRequest struct {
	// InputPath is the path to an existing, readable source file.
	InputPath string `json:"input_path" yaml:"input_path"`

	// InputFormat is the tag inferred from the input file's suffix.
	InputFormat Format `json:"input_format" yaml:"input_format"`

	// OutputDir is an existing directory that receives the result.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OutputFormat is the target tag; it equals InputFormat for plain copies.
	OutputFormat Format `json:"output_format" yaml:"output_format"`

	// NameFile is the output base name without extension.
	NameFile string `json:"name_file" yaml:"name_file"`
}

// Pair returns the (input, output) format combination of the request.
func (r ConversionRequest) Pair() Pair {
	return Pair{From: r.InputFormat, To: r.OutputFormat}
}

// OutputFile returns {OutputDir}/{NameFile}.{OutputFormat}.
func (r ConversionRequest) OutputFile() string {
	return filepath.Join(r.OutputDir, r.NameFile+"."+string(r.OutputFormat))
}
