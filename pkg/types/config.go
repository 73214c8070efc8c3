package types

// PDFConfig holds layout settings for the text-to-PDF paginator and the
// extraction policy for PDF-to-text.
type PDFConfig struct {
	// CharsPerLine is the number of characters cut into each line (default 110).
	// Breaks are by character count, not rendered width.
	CharsPerLine int `json:"chars_per_line" yaml:"chars_per_line" mapstructure:"chars_per_line"`

	// LinesPerPage is the number of lines placed before a new page starts (default 27).
	LinesPerPage int `json:"lines_per_page" yaml:"lines_per_page" mapstructure:"lines_per_page"`

	// FontSize is the font size in points (default 12).
	FontSize float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// LineSpacing is the vertical distance between lines in mm (default 10).
	LineSpacing float64 `json:"line_spacing" yaml:"line_spacing" mapstructure:"line_spacing"`

	// TopY is the baseline of the first line, in mm from the bottom edge (default 287).
	TopY float64 `json:"top_y" yaml:"top_y" mapstructure:"top_y"`

	// LeftX is the left edge of every line in mm (default 10).
	LeftX float64 `json:"left_x" yaml:"left_x" mapstructure:"left_x"`

	// LenientExtract makes PDF-to-text write an empty file instead of
	// failing when text extraction fails.
	LenientExtract bool `json:"lenient_extract" yaml:"lenient_extract" mapstructure:"lenient_extract"`
}

// DefaultPDFConfig returns the A4 layout: 110 characters per line, 27 lines
// per page, 12pt text spaced 10mm apart starting 287mm above the bottom edge.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		CharsPerLine: 110,
		LinesPerPage: 27,
		FontSize:     12,
		LineSpacing:  10,
		TopY:         287,
		LeftX:        10,
	}
}

// WithDefaults returns c with zero or negative layout fields replaced by
// the values from DefaultPDFConfig.
func (c PDFConfig) WithDefaults() PDFConfig {
	d := DefaultPDFConfig()
	if c.CharsPerLine <= 0 {
		c.CharsPerLine = d.CharsPerLine
	}
	if c.LinesPerPage <= 0 {
		c.LinesPerPage = d.LinesPerPage
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.LineSpacing <= 0 {
		c.LineSpacing = d.LineSpacing
	}
	if c.TopY <= 0 {
		c.TopY = d.TopY
	}
	if c.LeftX <= 0 {
		c.LeftX = d.LeftX
	}
	return c
}

// Config groups the settings read from flags, environment, and the
// optional config file.
type Config struct {
	// OutputDir is the default output directory. Empty means the user's
	// downloads directory.
	OutputDir string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`

	PDF PDFConfig `json:"pdf" yaml:"pdf" mapstructure:"pdf"`
}
