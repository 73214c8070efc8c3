//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const samplesDir = "samples"

// sampleInputs are written to samples/in before Samples runs every
// supported conversion on them.
var sampleInputs = map[string]string{
	"notes.txt": strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200),
	"data.csv":  "name,city\nAda,London\nLinus,Helsinki\n",
	"data.json": `{"library":{"-id":"7","book":[{"title":"Go"},{"title":"Le Go"}]}}`,
	"data.xml":  `<library id="7"><book><title>Go</title></book><book><title>Le Go</title></book></library>`,
}

// sampleRuns lists input file and target extension for each conversion.
var sampleRuns = [][2]string{
	{"notes.txt", "pdf"},
	{"notes.txt", "docx"},
	{"notes.txt", ""},
	{"data.csv", "html"},
	{"data.json", "xml"},
	{"data.xml", "json"},
}

// Samples builds the binary and converts a set of sample documents into
// samples/out for manual inspection.
func Samples() error {
	mg.Deps(Build)

	inDir := filepath.Join(samplesDir, "in")
	outDir := filepath.Join(samplesDir, "out")
	for _, dir := range []string{inDir, outDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	for name, content := range sampleInputs {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing sample %s: %w", name, err)
		}
	}

	bin := filepath.Join(binDir, binName)
	for _, run := range sampleRuns {
		args := []string{"-i", filepath.Join(inDir, run[0]), "-o", outDir}
		if run[1] != "" {
			args = append(args, "-e", run[1])
		}
		if err := sh.RunV(bin, args...); err != nil {
			return fmt.Errorf("converting %s: %w", run[0], err)
		}
	}

	// Round-trip the generated PDF back to text.
	pdf := filepath.Join(outDir, "notes-converted.pdf")
	return sh.RunV(bin, "-i", pdf, "-e", "txt", "-o", outDir, "-n", "notes-roundtrip")
}
