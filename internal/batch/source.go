package batch

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// FormatFromPath selects the record source format from the file extension.
// Unknown extensions are read as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return constants.SourceFormatYAML
	case ".csv":
		return constants.SourceFormatCSV
	case ".xlsx":
		return constants.SourceFormatXLSX
	default:
		return constants.SourceFormatJSON
	}
}

// LoadRecords reads the record source at path.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}

	records, err := DecodeRecords(FormatFromPath(path), bytes.NewReader(data))
	if err != nil {
		var malformed *MalformedSourceError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return records, nil
}

// DecodeRecords parses a record source in the given format. Any parse failure,
// including a top-level value that is not a list of mappings, is returned as
// a *MalformedSourceError.
func DecodeRecords(format string, r io.Reader) ([]Record, error) {
	var (
		records []Record
		err     error
	)

	switch format {
	case constants.SourceFormatJSON:
		records, err = decodeJSON(r)
	case constants.SourceFormatYAML:
		records, err = decodeYAML(r)
	case constants.SourceFormatCSV:
		records, err = decodeCSV(r)
	case constants.SourceFormatXLSX:
		records, err = decodeXLSX(r)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return nil, &MalformedSourceError{Format: format, Err: err}
	}
	return records, nil
}

func decodeJSON(r io.Reader) ([]Record, error) {
	var doc interface{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	return toRecords(doc)
}

func decodeYAML(r io.Reader) ([]Record, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	return toRecords(doc)
}

func toRecords(doc interface{}) ([]Record, error) {
	list, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list of records, got %T", doc)
	}

	records := make([]Record, 0, len(list))
	for i, item := range list {
		switch m := item.(type) {
		case map[string]interface{}:
			records = append(records, Record(m))
		case map[interface{}]interface{}:
			rec := make(Record, len(m))
			for k, v := range m {
				rec[fmt.Sprint(k)] = v
			}
			records = append(records, rec)
		default:
			return nil, fmt.Errorf("record %d: expected a mapping, got %T", i, item)
		}
	}
	return records, nil
}

func decodeCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

func decodeXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

// utf8BOM is written at the start of CSV files exported by spreadsheet tools.
const utf8BOM = "\ufeff"

// rowsToRecords maps tabular rows onto records using the first row as the
// header. Empty cells leave the field unset.
func rowsToRecords(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header[i] = strings.ToLower(strings.TrimSpace(name))
		if header[i] == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", n+2, len(row), len(header))
		}
		if isBlankRow(row) {
			continue
		}
		rec := make(Record, len(row))
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			rec[header[i]] = parseCell(cell)
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseCell returns the numeric value of a cell, or the text itself when it
// is not a number so that validation rejects it.
func parseCell(cell string) interface{} {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
