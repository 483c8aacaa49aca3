// Package domain defines the inputs, results and reports of a protection run.
package domain

import (
	validation "github.com/jellydator/validation"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
	customValidation "github.com/allisson/datamask/internal/validation"
)

// RunInput is the input of a masking and tokenization run, and of a restore.
type RunInput struct {
	Table *datasetDomain.Table
	// SensitiveColumns are processed in order. Names absent from Table produce warnings.
	SensitiveColumns []string
	KeyLocation      string
}

// Validate checks the input shape. Column names are not checked against the table.
func (r *RunInput) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Table, validation.NotNil.Error("table is required")),
		validation.Field(&r.SensitiveColumns,
			validation.Required.Error("at least one sensitive column is required"),
			validation.Each(
				validation.Required.Error("column name must not be blank"),
				customValidation.NotBlank.Error("column name must not be blank"),
			),
		),
		validation.Field(&r.KeyLocation,
			validation.Required.Error("key location is required"),
			customValidation.NotBlank.Error("key location must not be blank"),
		),
	)
	return customValidation.WrapValidationError(err)
}

// KeyInfo describes the key used by a run without exposing its material.
type KeyInfo struct {
	Location    string
	Fingerprint string
	Generated   bool
	Wrapped     bool
}

// Result is the outcome of a masking and tokenization run.
type Result struct {
	RunID       string
	Masked      *datasetDomain.Table
	Tokenized   *datasetDomain.Table
	MaskReport  *Report
	TokenReport *Report
	Key         KeyInfo
}

// HasWarnings reports whether either pass produced warnings.
func (r *Result) HasWarnings() bool {
	return r.MaskReport.HasWarnings() || r.TokenReport.HasWarnings()
}

// RestoreResult is the outcome of detokenizing a table.
type RestoreResult struct {
	RunID    string
	Restored *datasetDomain.Table
	Report   *Report
	Key      KeyInfo
}

// HasWarnings reports whether the restore produced warnings.
func (r *RestoreResult) HasWarnings() bool {
	return r.Report.HasWarnings()
}
