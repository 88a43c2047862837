// Package output provides utilities for formatting and displaying EOQ results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/format"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(rows []Row, currencySymbol string) {
	_ = WritePretty(os.Stdout, rows, currencySymbol)
}

// WritePretty writes an aligned table with thousands separators.
func WritePretty(w io.Writer, rows []Row, currencySymbol string) error {
	p := message.NewPrinter(language.English)

	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, Columns)
	for _, row := range rows {
		cells = append(cells, []string{
			row.Year,
			prettyQuantity(p, row.AnnualDemand),
			prettyQuantity(p, row.EOQ),
			prettyCurrency(row.OrderingCost, currencySymbol),
			prettyCurrency(row.HoldingCost, currencySymbol),
			prettyCurrency(row.TotalCost, currencySymbol),
			prettyQuantity(p, row.OrdersPerYear),
			prettyQuantity(p, row.DaysBetweenOrders),
		})
	}

	widths := make([]int, len(Columns))
	for _, line := range cells {
		for i, cell := range line {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	separator := make([]string, len(Columns))
	for i, width := range widths {
		separator[i] = strings.Repeat("_", width)
	}

	var buf bytes.Buffer
	writeLine(&buf, cells[0], widths)
	writeLine(&buf, separator, widths)
	for _, line := range cells[1:] {
		writeLine(&buf, line, widths)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeLine(buf *bytes.Buffer, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(cell)
		if i < len(cells)-1 {
			buf.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	buf.WriteString("\n")
}

// prettyQuantity regroups a whole quantity with thousands separators.
func prettyQuantity(p *message.Printer, whole string) string {
	d, err := decimal.NewFromString(whole)
	if err != nil {
		return whole
	}
	return p.Sprintf("%.0f", d.InexactFloat64())
}

// prettyCurrency regroups a fixed two-decimal amount with thousands
// separators and the currency symbol.
func prettyCurrency(fixed, symbol string) string {
	d, err := decimal.NewFromString(fixed)
	if err != nil {
		return fixed
	}
	return format.Currency(d.InexactFloat64(), symbol)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(rows []Row) {
	_ = WriteCSV(os.Stdout, rows)
}

// CsvString returns the CSV rendering of rows.
func CsvString(rows []Row) string {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return ""
	}
	return buf.String()
}

// WriteCSV writes a header line followed by one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the rows as an indented JSON array.
func JSONFormat(rows []Row) {
	_ = WriteJSON(os.Stdout, rows)
}

// WriteJSON writes the rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Summary describes a batch outcome in one or two lines: the number of
// computed records and the years that were skipped, grouped by reason.
func Summary(outcome batch.Outcome) string {
	if outcome.LoadError != nil {
		return fmt.Sprintf("Batch failed: %v", outcome.LoadError)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Computed %d/%d records", len(outcome.Results), outcome.Total)
	for _, reason := range []validation.Reason{validation.ReasonInvalidYear, validation.ReasonInvalidValues} {
		count := 0
		for _, s := range outcome.Skipped {
			if s.Reason == reason {
				count++
			}
		}
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nSkipped %d record(s) with %s", count, strings.ReplaceAll(string(reason), "_", " "))
		if years := outcome.SkippedYears(reason); len(years) > 0 {
			parts := make([]string, len(years))
			for i, y := range years {
				parts[i] = fmt.Sprint(y)
			}
			fmt.Fprintf(&b, ": %s", strings.Join(parts, ", "))
		}
	}
	return b.String()
}
