package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
	apperrors "github.com/allisson/datamask/internal/errors"
)

func TestRunInput_Validate(t *testing.T) {
	table, err := datasetDomain.NewTable([]string{"email"}, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   RunInput
		wantErr bool
	}{
		{
			name:  "Valid",
			input: RunInput{Table: table, SensitiveColumns: []string{"email"}, KeyLocation: "secret.key"},
		},
		{
			name:  "Valid_ColumnAbsentFromTable",
			input: RunInput{Table: table, SensitiveColumns: []string{"ghost"}, KeyLocation: "secret.key"},
		},
		{
			name:    "Invalid_NilTable",
			input:   RunInput{SensitiveColumns: []string{"email"}, KeyLocation: "secret.key"},
			wantErr: true,
		},
		{
			name:    "Invalid_NoColumns",
			input:   RunInput{Table: table, KeyLocation: "secret.key"},
			wantErr: true,
		},
		{
			name:    "Invalid_EmptyColumnName",
			input:   RunInput{Table: table, SensitiveColumns: []string{"email", ""}, KeyLocation: "secret.key"},
			wantErr: true,
		},
		{
			name:    "Invalid_BlankColumnName",
			input:   RunInput{Table: table, SensitiveColumns: []string{"  "}, KeyLocation: "secret.key"},
			wantErr: true,
		},
		{
			name:    "Invalid_BlankKeyLocation",
			input:   RunInput{Table: table, SensitiveColumns: []string{"email"}, KeyLocation: " "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReport(t *testing.T) {
	t.Run("Totals", func(t *testing.T) {
		report := &Report{
			Columns: []ColumnReport{
				{Column: "email", Found: true, Scanned: 3, Transformed: 1, Failed: 1, Matches: map[string]int{"email": 2}},
				{Column: "phone", Found: true, Scanned: 3, Transformed: 2, Matches: map[string]int{"phone": 1, "ssn": 1}},
				{Column: "ghost"},
			},
		}

		assert.Equal(t, map[string]int{
			OutcomeScanned:     6,
			OutcomeMatched:     4,
			OutcomeTransformed: 3,
			OutcomeFailed:      1,
		}, report.Totals())
	})

	t.Run("HasWarnings", func(t *testing.T) {
		var nilReport *Report
		assert.False(t, nilReport.HasWarnings())
		assert.False(t, (&Report{}).HasWarnings())
		assert.True(t, (&Report{Warnings: []Warning{{Column: "ghost", Row: -1, Message: "column not found"}}}).HasWarnings())
	})

	t.Run("ResultHasWarnings", func(t *testing.T) {
		clean := &Report{}
		warned := &Report{Warnings: []Warning{{Column: "email", Row: 0, Message: "cell transform failed"}}}

		assert.False(t, (&Result{MaskReport: clean, TokenReport: clean}).HasWarnings())
		assert.True(t, (&Result{MaskReport: clean, TokenReport: warned}).HasWarnings())
		assert.True(t, (&RestoreResult{Report: warned}).HasWarnings())
	})
}
