// Package csvfile reads import batches from CSV files and writes CSV
// backups of the store. Column mapping is header-driven, so import files
// may carry any subset of the canonical fields in any order.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// utf8BOM marks backup files so spreadsheet apps detect the encoding;
// import files carrying one are read transparently.
const utf8BOM = "\xef\xbb\xbf"

// requiredColumns must be present in an import file's header.
var requiredColumns = []string{domain.FieldWord, domain.FieldPOS, domain.FieldMeaning}

// ReadRecords parses a CSV import file into raw records, one per data row.
// The first row is the header; names are matched to the canonical fields
// case-insensitively, unknown columns are ignored. Word, POS, and Meaning
// columns are required; a file missing them is rejected as a whole.
func ReadRecords(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return parseRecords(f)
}

func parseRecords(r io.Reader) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if len(headerRow) > 0 {
		headerRow[0] = strings.TrimPrefix(headerRow[0], utf8BOM)
	}

	columns, err := mapColumns(headerRow)
	if err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}

		var raw domain.RawRecord
		empty := true
		for i, field := range columns {
			if field == "" || i >= len(row) {
				continue
			}
			raw.Set(field, row[i])
			if strings.TrimSpace(row[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		records = append(records, raw)
	}

	return records, nil
}

// mapColumns resolves each header cell to a canonical field name, "" for
// unknown columns. Missing required columns fail the whole file.
func mapColumns(headerRow []string) ([]string, error) {
	byLower := make(map[string]string, domain.FieldCount)
	for _, name := range domain.Header() {
		byLower[strings.ToLower(name)] = name
	}

	columns := make([]string, len(headerRow))
	present := make(map[string]bool, len(headerRow))
	for i, cell := range headerRow {
		if field, ok := byLower[strings.ToLower(strings.TrimSpace(cell))]; ok {
			columns[i] = field
			present[field] = true
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv: missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

// WriteRecords writes a backup CSV: canonical header plus one row per
// record, BOM-prefixed for spreadsheet apps.
func WriteRecords(path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(domain.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("write record %q: %w", rec.Word, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
