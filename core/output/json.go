package output

import (
	"io"

	json "github.com/goccy/go-json"

	"support-cost/core/types"
)

// JSONFormatter renders comparisons as JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// jsonReport is the document written by the JSON formatter
type jsonReport struct {
	Comparisons []jsonComparison `json:"comparisons"`
}

type jsonComparison struct {
	types.Comparison
	Chart ChartView `json:"chart"`
}

// Render writes all comparisons as a single indented document.
// Decimal amounts are encoded as strings.
func (f *JSONFormatter) Render(w io.Writer, comparisons []types.Comparison) error {
	report := jsonReport{Comparisons: make([]jsonComparison, 0, len(comparisons))}
	for _, cmp := range comparisons {
		report.Comparisons = append(report.Comparisons, jsonComparison{
			Comparison: cmp,
			Chart:      Chart(cmp),
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
