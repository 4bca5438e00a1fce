// Package output provides output formatting for comparisons.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"

	"support-cost/core/types"
	"support-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatXLSX is a spreadsheet with one sheet per scenario
	FormatXLSX Format = "xlsx"
)

// Options controls what renderers include
type Options struct {
	// ShowNotes adds the vendor notes column
	ShowNotes bool

	// ShowAssumptions adds projected volumes and coverage multipliers
	ShowAssumptions bool

	// NoColor disables terminal colors
	NoColor bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes every comparison to w
	Render(w io.Writer, comparisons []types.Comparison) error
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry holding every built-in formatter
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	for _, f := range []Formatter{
		NewCLIFormatter(opts),
		NewJSONFormatter(),
		NewMarkdownFormatter(opts),
		NewXLSXFormatter(opts),
	} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotSupported(fmt.Sprintf("output format %q", format))
	}
	return f, nil
}

// Formats lists registered formats in sorted order
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
