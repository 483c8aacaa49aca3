package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
	protectionService "github.com/allisson/datamask/internal/protection/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTable(t *testing.T, header []string, rows ...[]string) *datasetDomain.Table {
	t.Helper()
	table, err := datasetDomain.NewTable(header, rows)
	require.NoError(t, err)
	return table
}

func column(t *testing.T, table *datasetDomain.Table, name string) []string {
	t.Helper()
	values, err := table.Column(name)
	require.NoError(t, err)
	return values
}

func maskTransform(value string) (string, error) {
	return protectionService.NewMasker('*').Mask(value), nil
}

func TestFieldProcessor_Process(t *testing.T) {
	ctx := context.Background()
	classifier := protectionService.NewPatternClassifier()

	t.Run("Success_MasksOnlySensitiveCells", func(t *testing.T) {
		processor := NewFieldProcessor(newDiscardLogger(), DefaultFailureMarker)
		table := newTable(t, []string{"email"}, []string{"a@b.com"}, []string{"not-an-email"})

		out, report := processor.Process(ctx, table, []string{"email"}, classifier, maskTransform)

		assert.Equal(t, []string{"*******", "not-an-email"}, column(t, out, "email"))
		assert.False(t, report.HasWarnings())
		require.Len(t, report.Columns, 1)
		assert.Equal(t, protectionDomain.ColumnReport{
			Column:      "email",
			Found:       true,
			Scanned:     2,
			Transformed: 1,
			Matches:     map[string]int{protectionService.PatternEmail: 1},
		}, report.Columns[0])
	})

	t.Run("Success_DoesNotMutateInput", func(t *testing.T) {
		processor := NewFieldProcessor(newDiscardLogger(), DefaultFailureMarker)
		table := newTable(t, []string{"email"}, []string{"a@b.com"})

		_, _ = processor.Process(ctx, table, []string{"email"}, classifier, maskTransform)

		assert.Equal(t, []string{"a@b.com"}, column(t, table, "email"))
	})

	t.Run("Success_MissingColumnIsAWarning", func(t *testing.T) {
		var logs bytes.Buffer
		processor := NewFieldProcessor(slog.New(slog.NewJSONHandler(&logs, nil)), DefaultFailureMarker)
		table := newTable(t,
			[]string{"name", "ssn"},
			[]string{"Ann", "123-45-6789"},
			[]string{"Bob", "n/a"},
		)

		out, report := processor.Process(ctx, table, []string{"ssn", "ghost_column"}, classifier, maskTransform)

		assert.Equal(t, []string{"***********", "n/a"}, column(t, out, "ssn"))
		assert.Equal(t, []string{"Ann", "Bob"}, column(t, out, "name"))
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "ghost_column", report.Warnings[0].Column)
		assert.Equal(t, -1, report.Warnings[0].Row)
		assert.Contains(t, report.Warnings[0].Message, "column not found")
		assert.False(t, report.Columns[1].Found)
		assert.Equal(t, 1, strings.Count(logs.String(), `"msg":"column not found"`))
		assert.Contains(t, logs.String(), `"column":"ghost_column"`)
	})

	t.Run("Success_FailedCellBecomesMarker", func(t *testing.T) {
		var logs bytes.Buffer
		processor := NewFieldProcessor(slog.New(slog.NewJSONHandler(&logs, nil)), "#FAILED#")
		table := newTable(t, []string{"contact"},
			[]string{"bad@b.com"},
			[]string{"good@b.com"},
			[]string{"555-123-4567"},
		)
		transform := func(value string) (string, error) {
			if strings.HasPrefix(value, "bad") {
				return "", errors.New("boom")
			}
			return "ok", nil
		}

		out, report := processor.Process(ctx, table, []string{"contact"}, classifier, transform)

		assert.Equal(t, []string{"#FAILED#", "ok", "ok"}, column(t, out, "contact"))
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, 0, report.Warnings[0].Row)
		assert.Equal(t, 1, report.Columns[0].Failed)
		assert.Equal(t, 2, report.Columns[0].Transformed)
		assert.Equal(t, map[string]int{
			protectionService.PatternEmail: 2,
			protectionService.PatternPhone: 1,
		}, report.Columns[0].Matches)
		assert.Contains(t, logs.String(), `"msg":"cell transform failed"`)
		assert.NotContains(t, logs.String(), "bad@b.com")
	})

	t.Run("Success_DuplicateColumnProcessedOnce", func(t *testing.T) {
		processor := NewFieldProcessor(newDiscardLogger(), DefaultFailureMarker)
		table := newTable(t, []string{"email"}, []string{"a@b.com"})
		calls := 0
		transform := func(value string) (string, error) {
			calls++
			return value + "@x.com", nil
		}

		out, report := processor.Process(ctx, table, []string{"email", "email"}, classifier, transform)

		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"a@b.com@x.com"}, column(t, out, "email"))
		assert.Len(t, report.Columns, 1)
	})

	t.Run("Success_ZeroRows", func(t *testing.T) {
		processor := NewFieldProcessor(newDiscardLogger(), DefaultFailureMarker)
		table := newTable(t, []string{"email"})

		out, report := processor.Process(ctx, table, []string{"email"}, classifier, maskTransform)

		assert.Equal(t, 0, out.NumRows())
		assert.False(t, report.HasWarnings())
		assert.Equal(t, 0, report.Columns[0].Scanned)
	})
}
