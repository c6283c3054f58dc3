// Package validate checks an enriched issue table for schema,
// completeness, and domain problems before it is handed to reporting.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/driftwoodlabs/issuesift/internal/csvio"
	"github.com/driftwoodlabs/issuesift/internal/model"
)

// Level grades a finding. Errors make the table unusable downstream;
// warnings flag quality problems worth a look.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
)

// Finding is one problem detected in the table.
type Finding struct {
	Level   Level
	Message string
}

// Report is the outcome of a validation run.
type Report struct {
	Rows     int
	Findings []Finding
}

// OK reports whether the run produced no error-level findings.
func (r *Report) OK() bool {
	for _, f := range r.Findings {
		if f.Level == LevelError {
			return false
		}
	}
	return true
}

func (r *Report) errorf(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: LevelError, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

var baseColumns = []string{
	"issue_number", "title", "body", "html_url", "created_at", "comments_count",
}

var enrichedColumns = []string{
	"Category", "Summary", "Sentiment", "L1_Tag", "L1_Category",
	"L2_Tag", "L2_Category", "Confidence",
}

var (
	validCategories = map[string]bool{
		string(model.TypeBug):            true,
		string(model.TypeFeatureRequest): true,
		string(model.TypeDocumentation):  true,
	}
	validSentiments = map[string]bool{
		string(model.SentimentPositive): true,
		string(model.SentimentNeutral):  true,
		string(model.SentimentNegative): true,
	}
	validConfidences = map[string]bool{
		string(model.ConfidenceHigh):   true,
		string(model.ConfidenceMedium): true,
		string(model.ConfidenceLow):    true,
	}
)

// File validates the classified CSV at path and, when prioritiesPath is
// non-empty, the matching triage CSV.
func File(path, prioritiesPath string) (*Report, error) {
	table, err := csvio.ReadTable(path)
	if err != nil {
		return nil, err
	}

	report := Validate(table)

	if prioritiesPath != "" {
		priorities, err := csvio.ReadPriorities(prioritiesPath)
		if err != nil {
			return nil, err
		}
		checkPriorities(report, table, priorities)
	}
	return report, nil
}

// Validate runs the schema, completeness, domain, and duplicate checks
// on a classified issue table.
func Validate(table *csvio.Table) *Report {
	report := &Report{Rows: len(table.Rows)}

	var missing []string
	for _, col := range append(append([]string{}, baseColumns...), enrichedColumns...) {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		report.errorf("missing columns: %s", strings.Join(missing, ", "))
		// Remaining checks would misfire against an incomplete schema.
		return report
	}
	if len(table.Rows) == 0 {
		report.warnf("table has no rows")
		return report
	}

	checkCompleteness(report, table)
	checkDomains(report, table)
	checkSummaries(report, table)
	checkDuplicates(report, table)
	return report
}

func checkCompleteness(report *Report, table *csvio.Table) {
	for _, col := range enrichedColumns {
		empty := 0
		for _, row := range table.Rows {
			if strings.TrimSpace(row[col]) == "" {
				empty++
			}
		}
		if empty > 0 {
			report.warnf("%s: %d missing values (%.1f%%)",
				col, empty, float64(empty)/float64(len(table.Rows))*100)
		}
	}
}

func checkDomains(report *Report, table *csvio.Table) {
	checkDomain(report, table, "Category", validCategories)
	checkDomain(report, table, "Sentiment", validSentiments)
	checkDomain(report, table, "Confidence", validConfidences)
}

func checkDomain(report *Report, table *csvio.Table, col string, valid map[string]bool) {
	invalid := map[string]int{}
	for _, row := range table.Rows {
		v := row[col]
		if v != "" && !valid[v] {
			invalid[v]++
		}
	}
	if len(invalid) == 0 {
		return
	}
	keys := make([]string, 0, len(invalid))
	for k := range invalid {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		report.errorf("%s: invalid value %q in %d rows", col, k, invalid[k])
	}
}

func checkSummaries(report *Report, table *csvio.Table) {
	tooShort, tooLong := 0, 0
	for _, row := range table.Rows {
		n := len([]rune(row["Summary"]))
		switch {
		case n < 20:
			tooShort++
		case n > 200:
			tooLong++
		}
	}
	if tooShort > 0 {
		report.warnf("Summary: %d values shorter than 20 characters", tooShort)
	}
	if tooLong > 0 {
		report.warnf("Summary: %d values longer than 200 characters", tooLong)
	}
}

func checkDuplicates(report *Report, table *csvio.Table) {
	seen := map[string]int{}
	for _, row := range table.Rows {
		seen[row["issue_number"]]++
	}
	var dups []string
	for num, count := range seen {
		if count > 1 {
			dups = append(dups, num)
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		report.errorf("duplicate issue numbers: %s", strings.Join(dups, ", "))
	}
}

// checkPriorities cross-checks a triage CSV against the issue table.
func checkPriorities(report *Report, table *csvio.Table, priorities []model.PriorityResult) {
	issueNumbers := make(map[string]bool, len(table.Rows))
	for _, row := range table.Rows {
		issueNumbers[row["issue_number"]] = true
	}

	errorRows := 0
	covered := make(map[string]bool, len(priorities))
	for _, p := range priorities {
		if !model.ValidPriority(string(p.Priority)) {
			if p.Priority == model.PriorityError {
				errorRows++
			} else {
				report.errorf("priority: invalid value %q for issue %d", p.Priority, p.IssueNumber)
			}
		}
		key := fmt.Sprintf("%d", p.IssueNumber)
		if issueNumbers[key] {
			covered[key] = true
		} else {
			report.warnf("priority: issue %d not present in the issue table", p.IssueNumber)
		}
	}
	if errorRows > 0 {
		report.warnf("priority: %d rows in ERROR state", errorRows)
	}
	if len(covered) < len(table.Rows) {
		report.warnf("priority: %d issues have no triage row", len(table.Rows)-len(covered))
	}
}
