// Package taxonomy loads the two-level issue taxonomy and provides the
// ordered lookups the classification engine scores against.
package taxonomy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Row is one taxonomy CSV row: an (L1, L2) pair with metadata and an
// example-keyword list.
type Row struct {
	L1Code        string
	L1Category    string
	L1Description string
	L2Code        string
	L2Subcategory string
	L2Description string
	Keywords      string // comma-separated, split at load time
}

// Table holds the taxonomy as ordered L1 groups plus flat code→name maps.
// Group order follows first appearance in the source rows; the matcher
// depends on that order for stable tie-breaking.
type Table struct {
	groups  []model.L1Group
	index   map[string]int // l1 code → position in groups
	l1Names map[string]string
	l2Names map[string]string
}

// New builds a Table from taxonomy rows. Duplicate L1 rows accumulate their
// L2 options into the same group; the L1 category and description fields
// take the last writer. Keywords are lowercased, comma-split, and empty
// tokens dropped. Code formats are not validated.
func New(rows []Row) *Table {
	t := &Table{
		index:   make(map[string]int),
		l1Names: make(map[string]string),
		l2Names: make(map[string]string),
	}
	for _, row := range rows {
		t.l1Names[row.L1Code] = row.L1Category
		t.l2Names[row.L2Code] = row.L2Subcategory

		pos, ok := t.index[row.L1Code]
		if !ok {
			pos = len(t.groups)
			t.index[row.L1Code] = pos
			t.groups = append(t.groups, model.L1Group{Code: row.L1Code})
		}
		t.groups[pos].Category = row.L1Category
		t.groups[pos].Description = row.L1Description
		t.groups[pos].L2Options = append(t.groups[pos].L2Options, model.L2Option{
			Code:        row.L2Code,
			Subcategory: row.L2Subcategory,
			Description: row.L2Description,
			Keywords:    splitKeywords(row.Keywords),
		})
	}
	return t
}

// Load reads a taxonomy CSV with the columns
// L1_Code, L1_Category, L1_Description, L2_Code, L2_Subcategory,
// L2_Description, Example_Keywords. Column order is not significant.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads taxonomy CSV rows from r. See Load for the expected columns.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("taxonomy: read row: %w", err)
		}
		rows = append(rows, Row{
			L1Code:        get(record, "L1_Code"),
			L1Category:    get(record, "L1_Category"),
			L1Description: get(record, "L1_Description"),
			L2Code:        get(record, "L2_Code"),
			L2Subcategory: get(record, "L2_Subcategory"),
			L2Description: get(record, "L2_Description"),
			Keywords:      get(record, "Example_Keywords"),
		})
	}
	return New(rows), nil
}

// Groups returns the L1 groups in first-appearance order.
func (t *Table) Groups() []model.L1Group {
	return t.groups
}

// Group returns the L1 group for the given code.
func (t *Table) Group(l1Code string) (model.L1Group, bool) {
	pos, ok := t.index[l1Code]
	if !ok {
		return model.L1Group{}, false
	}
	return t.groups[pos], true
}

// L1Name returns the display name for an L1 code, or "Other" when unknown.
func (t *Table) L1Name(code string) string {
	if name, ok := t.l1Names[code]; ok {
		return name
	}
	return model.CodeOther
}

// L2Name returns the display name for an L2 code, or "Other" when unknown.
func (t *Table) L2Name(code string) string {
	if name, ok := t.l2Names[code]; ok {
		return name
	}
	return model.CodeOther
}

// Len returns the number of L1 groups.
func (t *Table) Len() int {
	return len(t.groups)
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(strings.ToLower(s), ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
