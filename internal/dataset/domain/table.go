// Package domain defines the in-memory tabular dataset processed by a run.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Table is an ordered set of uniquely named string columns sharing one row count.
//
// Cells are stored column by column. Tables are not safe for concurrent mutation;
// processing works on a Clone and never on its input.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]string
	rows    int
}

// NewTable builds a Table from a header and row-major records.
// Returns ErrInvalidTable for an empty header, an empty or duplicate column name,
// or a row whose length differs from the header.
func NewTable(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: header has no columns", ErrInvalidTable)
	}

	t := &Table{
		columns: slices.Clone(header),
		index:   make(map[string]int, len(header)),
		cells:   make([][]string, len(header)),
		rows:    len(rows),
	}
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", ErrInvalidTable, i+1)
		}
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, name)
		}
		t.index[name] = i
		t.cells[i] = make([]string, len(rows))
	}

	for r, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf(
				"%w: row %d has %d fields, header has %d",
				ErrInvalidTable,
				r+1,
				len(row),
				len(header),
			)
		}
		for c, value := range row {
			t.cells[c][r] = value
		}
	}

	return t, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.rows
}

// HasColumn reports whether the table has a column named name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the cells of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	c, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return slices.Clone(t.cells[c]), nil
}

// Cell returns the value at the named column and row.
func (t *Table) Cell(name string, row int) (string, error) {
	c, err := t.locate(name, row)
	if err != nil {
		return "", err
	}
	return t.cells[c][row], nil
}

// SetCell replaces the value at the named column and row.
func (t *Table) SetCell(name string, row int, value string) error {
	c, err := t.locate(name, row)
	if err != nil {
		return err
	}
	t.cells[c][row] = value
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := &Table{
		columns: slices.Clone(t.columns),
		index:   make(map[string]int, len(t.index)),
		cells:   make([][]string, len(t.cells)),
		rows:    t.rows,
	}
	for name, c := range t.index {
		clone.index[name] = c
	}
	for c, column := range t.cells {
		clone.cells[c] = slices.Clone(column)
	}
	return clone
}

// Rows returns the cells as row-major records, in column order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, t.rows)
	for r := range rows {
		row := make([]string, len(t.columns))
		for c := range t.columns {
			row[c] = t.cells[c][r]
		}
		rows[r] = row
	}
	return rows
}

func (t *Table) locate(name string, row int) (int, error) {
	c, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if row < 0 || row >= t.rows {
		return 0, fmt.Errorf("%w: %d (table has %d rows)", ErrRowOutOfRange, row, t.rows)
	}
	return c, nil
}
