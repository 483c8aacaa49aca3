// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
	apperrors "github.com/allisson/datamask/internal/errors"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
)

// ErrCompletedWithWarnings signals that a command finished and wrote its output but some
// columns were missing or some cells failed. It is returned only when the caller asked
// to fail on warnings.
var ErrCompletedWithWarnings = apperrors.New("completed with warnings")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// DatasetRepository reads and writes tables.
type DatasetRepository interface {
	Read(ctx context.Context, path string) (*datasetDomain.Table, error)
	Write(ctx context.Context, path string, table *datasetDomain.Table) error
}

// PipelineArgs are the positional arguments shared by run and detokenize.
type PipelineArgs struct {
	InputPath  string
	OutputPath string
	Columns    []string
}

// ParsePipelineArgs parses "<input> <output> <column>...".
func ParsePipelineArgs(args []string) (PipelineArgs, error) {
	if len(args) < 3 {
		return PipelineArgs{}, fmt.Errorf(
			"%w: expected <input> <output> <column>..., got %d argument(s)",
			apperrors.ErrInvalidInput,
			len(args),
		)
	}
	return PipelineArgs{
		InputPath:  args[0],
		OutputPath: args[1],
		Columns:    args[2:],
	}, nil
}

// validateFormat checks the output format flag.
func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("%w: invalid format: %s (valid options: text, json)", apperrors.ErrInvalidInput, format)
	}
	return nil
}

// reportOutput is the machine readable form of a report.
type reportOutput struct {
	Scanned     int             `json:"scanned"`
	Matched     int             `json:"matched"`
	Transformed int             `json:"transformed"`
	Failed      int             `json:"failed"`
	Warnings    []warningOutput `json:"warnings"`
}

type warningOutput struct {
	Column  string `json:"column"`
	Row     *int   `json:"row,omitempty"`
	Message string `json:"message"`
}

func newReportOutput(report *protectionDomain.Report) reportOutput {
	totals := report.Totals()
	out := reportOutput{
		Scanned:     totals[protectionDomain.OutcomeScanned],
		Matched:     totals[protectionDomain.OutcomeMatched],
		Transformed: totals[protectionDomain.OutcomeTransformed],
		Failed:      totals[protectionDomain.OutcomeFailed],
		Warnings:    make([]warningOutput, 0, len(report.Warnings)),
	}
	for _, w := range report.Warnings {
		wo := warningOutput{Column: w.Column, Message: w.Message}
		if w.Row >= 0 {
			// Rows are reported 1-based, matching the data rows of the file.
			row := w.Row + 1
			wo.Row = &row
		}
		out.Warnings = append(out.Warnings, wo)
	}
	return out
}

// writeReportText writes a one-line summary of a report followed by its warnings.
func writeReportText(w io.Writer, label string, report *protectionDomain.Report) {
	out := newReportOutput(report)
	_, _ = fmt.Fprintf(w, "%s: %d cell(s) scanned, %d matched, %d transformed, %d failed\n",
		label, out.Scanned, out.Matched, out.Transformed, out.Failed)
	for _, warning := range out.Warnings {
		if warning.Row != nil {
			_, _ = fmt.Fprintf(w, "  warning: column %q row %d: %s\n", warning.Column, *warning.Row, warning.Message)
			continue
		}
		_, _ = fmt.Fprintf(w, "  warning: column %q: %s\n", warning.Column, warning.Message)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
	return nil
}
