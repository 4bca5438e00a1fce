// Package ui - Terminal user interface
// Colored headers, status lines and aligned tables for comparison output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes formatted text with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.Color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Yellow, "⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Red, "✗ "), fmt.Sprintf(format, args...))
}

// Detail prints an indented, dimmed line
func (w *Writer) Detail(format string, args ...interface{}) {
	w.Println("%s", w.Color(Dim, "    "+fmt.Sprintf(format, args...)))
}

// Table renders an aligned table. Widths count runes so currency
// symbols such as € line up.
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
		right:   map[int]bool{},
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.Color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if t.right[i] {
			padded[i] = pad + cell
		} else {
			padded[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
