// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docconv/internal/dispatch"
	"github.com/pdiddy/docconv/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List accepted formats and supported conversions",
	Long: `Formats prints the extension tags docconv accepts and the conversion
pairs it can perform. Any format can also be copied to itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		return writeFormats(cmd.OutOrStdout(), asYAML)
	},
}

func init() {
	formatsCmd.Flags().Bool("yaml", false, "print the listing as YAML")

	rootCmd.AddCommand(formatsCmd)
}

// formatListing is the YAML shape of the formats output.
type formatListing struct {
	Formats     []types.Format `yaml:"formats"`
	Conversions []types.Pair   `yaml:"conversions"`
}

func writeFormats(w io.Writer, asYAML bool) error {
	listing := formatListing{
		Formats:     types.SupportedFormats(),
		Conversions: dispatch.New(types.DefaultPDFConfig(), nil).Supported(),
	}

	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&listing); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}

	tags := lo.Map(listing.Formats, func(f types.Format, _ int) string { return string(f) })
	fmt.Fprintf(w, "Formats: %s\n\nConversions:\n", strings.Join(tags, ", "))
	for _, p := range listing.Conversions {
		fmt.Fprintf(w, "  %s\n", p)
	}
	fmt.Fprintln(w, "  any => same format (copy)")
	return nil
}
