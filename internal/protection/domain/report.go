package domain

// Cell outcome labels used in reports and metrics.
const (
	OutcomeScanned     = "scanned"
	OutcomeMatched     = "matched"
	OutcomeTransformed = "transformed"
	OutcomeFailed      = "failed"
)

// Transform rewrites a single sensitive cell value.
type Transform func(value string) (string, error)

// ColumnReport counts what happened to the cells of one requested column.
type ColumnReport struct {
	Column string
	// Found is false when the column is absent from the table; no cell was scanned.
	Found       bool
	Scanned     int
	Transformed int
	Failed      int
	// Matches counts selected cells per pattern name.
	Matches map[string]int
}

// Matched returns the number of cells selected for transformation.
func (c *ColumnReport) Matched() int {
	total := 0
	for _, n := range c.Matches {
		total += n
	}
	return total
}

// Warning describes a non-fatal problem met while processing a column.
type Warning struct {
	Column  string
	Row     int
	Message string
}

// Report summarizes one pass of a transform over the requested columns.
type Report struct {
	Columns  []ColumnReport
	Warnings []Warning
}

// HasWarnings reports whether any column was missing or any cell failed.
func (r *Report) HasWarnings() bool {
	return r != nil && len(r.Warnings) > 0
}

// Totals sums the cell counters of every column, keyed by outcome label.
func (r *Report) Totals() map[string]int {
	totals := map[string]int{
		OutcomeScanned:     0,
		OutcomeMatched:     0,
		OutcomeTransformed: 0,
		OutcomeFailed:      0,
	}
	if r == nil {
		return totals
	}
	for i := range r.Columns {
		c := &r.Columns[i]
		totals[OutcomeScanned] += c.Scanned
		totals[OutcomeMatched] += c.Matched()
		totals[OutcomeTransformed] += c.Transformed
		totals[OutcomeFailed] += c.Failed
	}
	return totals
}
