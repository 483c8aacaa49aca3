package usecase

import (
	"context"
	"log/slog"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
)

// DefaultFailureMarker replaces cells whose transform failed.
const DefaultFailureMarker = "<transform-failed>"

// FieldProcessor applies a transform to the selected cells of named columns.
type FieldProcessor struct {
	logger        *slog.Logger
	failureMarker string
}

// NewFieldProcessor creates a FieldProcessor. Cells whose transform fails become failureMarker.
func NewFieldProcessor(logger *slog.Logger, failureMarker string) *FieldProcessor {
	return &FieldProcessor{
		logger:        logger,
		failureMarker: failureMarker,
	}
}

// Process returns a copy of table in which every cell of columns accepted by selector is
// replaced by transform(cell). Columns are processed in the given order and cells in row
// order. The input table is not modified. A column named more than once is processed once.
//
// A column absent from the table is skipped with a warning. A failed transform does not
// stop the column: the cell becomes the failure marker and a warning is recorded.
// Cell values are never logged.
func (p *FieldProcessor) Process(
	ctx context.Context,
	table *datasetDomain.Table,
	columns []string,
	selector Selector,
	transform protectionDomain.Transform,
) (*datasetDomain.Table, *protectionDomain.Report) {
	out := table.Clone()
	report := &protectionDomain.Report{
		Columns: make([]protectionDomain.ColumnReport, 0, len(columns)),
	}

	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		if _, ok := seen[column]; ok {
			continue
		}
		seen[column] = struct{}{}

		colReport := protectionDomain.ColumnReport{
			Column:  column,
			Matches: make(map[string]int),
		}

		values, err := out.Column(column)
		if err != nil {
			p.logger.WarnContext(ctx, "column not found",
				slog.String("column", column),
				slog.Any("error", err))
			report.Warnings = append(report.Warnings, protectionDomain.Warning{
				Column:  column,
				Row:     -1,
				Message: err.Error(),
			})
			report.Columns = append(report.Columns, colReport)
			continue
		}
		colReport.Found = true

		for row, value := range values {
			colReport.Scanned++

			pattern, ok := selector.Classify(value)
			if !ok {
				continue
			}
			colReport.Matches[pattern]++

			result, err := transform(value)
			if err != nil {
				p.logger.ErrorContext(ctx, "cell transform failed",
					slog.String("column", column),
					slog.Int("row", row),
					slog.String("pattern", pattern),
					slog.Any("error", err))
				report.Warnings = append(report.Warnings, protectionDomain.Warning{
					Column:  column,
					Row:     row,
					Message: protectionDomain.ErrCellTransformFailed.Error() + ": " + err.Error(),
				})
				colReport.Failed++
				result = p.failureMarker
			} else {
				colReport.Transformed++
			}

			// The row comes from the column just read, so it is always in range.
			_ = out.SetCell(column, row, result)
		}

		report.Columns = append(report.Columns, colReport)
	}

	return out, report
}
