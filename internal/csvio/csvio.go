// Package csvio reads and writes the toolkit's CSV tables: raw issues,
// classified issues, triage priorities, and the merged view the report and
// validate commands consume. Missing optional columns become empty values,
// never errors; only a missing input file is fatal.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table is a header-keyed CSV table.
type Table struct {
	Header []string
	Rows   []map[string]string
}

// HasColumn reports whether the table header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// ReadTable loads a whole CSV file into a header-keyed table.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	t := &Table{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read row of %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// writeAll writes a header row plus records to path, fully quoted-safe.
func writeAll(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("csvio: write header: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("csvio: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csvio: flush %s: %w", path, err)
	}
	return f.Close()
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
