package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"support-cost/core/types"
)

const maxSheetName = 31

// XLSXFormatter renders comparisons as a workbook, one sheet per scenario
type XLSXFormatter struct {
	opts Options
}

// NewXLSXFormatter creates an XLSX formatter
func NewXLSXFormatter(opts Options) *XLSXFormatter {
	return &XLSXFormatter{opts: opts}
}

// Format returns the format type
func (f *XLSXFormatter) Format() Format {
	return FormatXLSX
}

// Render writes the workbook to w
func (f *XLSXFormatter) Render(w io.Writer, comparisons []types.Comparison) error {
	book := excelize.NewFile()
	defer book.Close()

	used := map[string]bool{}
	for i, cmp := range comparisons {
		name := sheetName(cmp.ScenarioName, i, used)
		index, err := book.NewSheet(name)
		if err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if i == 0 {
			book.SetActiveSheet(index)
		}
		if err := f.writeSheet(book, name, cmp); err != nil {
			return err
		}
	}
	if len(comparisons) > 0 && !used["sheet1"] {
		_ = book.DeleteSheet("Sheet1")
	}

	_, err := book.WriteTo(w)
	return err
}

func (f *XLSXFormatter) writeSheet(book *excelize.File, sheet string, cmp types.Comparison) error {
	headers := []interface{}{
		"Vendor ID", "Vendor", "Currency", "Monthly cost", "Annual cost", "Cost per ticket", "Meets SLA", "Gaps",
	}
	if f.opts.ShowAssumptions {
		headers = append(headers, "Coverage multiplier", "Projected tickets", "Projected spend", "Source currency")
	}
	if f.opts.ShowNotes {
		headers = append(headers, "Notes")
	}
	if err := book.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	row := 2
	for _, r := range cmp.Results {
		cells := []interface{}{
			r.VendorID,
			r.VendorName,
			string(cmp.Currency),
			r.MonthlyCost.Round(2).InexactFloat64(),
			r.AnnualCost.Round(2).InexactFloat64(),
			r.CostPerTicket.Round(2).InexactFloat64(),
			r.MeetsSLA,
			strings.Join(r.Gaps, "; "),
		}
		if f.opts.ShowAssumptions {
			cells = append(cells,
				r.Assumptions.CoverageMultiplier.Round(4).InexactFloat64(),
				r.Assumptions.ProjectedTickets.Round(2).InexactFloat64(),
				r.Assumptions.ProjectedSpend.Round(2).InexactFloat64(),
				string(r.Assumptions.SourceCurrency),
			)
		}
		if f.opts.ShowNotes {
			cells = append(cells, r.Notes)
		}
		if err := book.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		row++
	}

	for _, e := range cmp.Validation.Errors {
		if err := book.SetCellValue(sheet, fmt.Sprintf("A%d", row), "error"); err != nil {
			return err
		}
		if err := book.SetCellValue(sheet, fmt.Sprintf("B%d", row), e); err != nil {
			return err
		}
		row++
	}
	return nil
}

// sheetName derives a unique, valid worksheet name from a scenario name
func sheetName(scenario string, index int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(scenario))
	if name == "" {
		name = fmt.Sprintf("Scenario %d", index+1)
	}
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}

	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetName {
			runes = runes[:maxSheetName-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
