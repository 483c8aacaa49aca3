// Package validation holds the jellydator/validation rules shared by configuration and run
// input checks, and maps their failures onto ErrInvalidInput.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/datamask/internal/errors"
)

// WrapValidationError turns a validation failure into ErrInvalidInput, keeping the
// field messages. Returns nil for a nil err.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank rejects strings made only of whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PrintableCharacter requires a single printable, non-space rune. Masks made of control
// characters or spaces would be invisible in the output.
var PrintableCharacter = validation.NewStringRuleWithError(
	func(s string) bool {
		r, size := utf8.DecodeRuneInString(s)
		return size == len(s) && r != utf8.RuneError && unicode.IsPrint(r) && !unicode.IsSpace(r)
	},
	validation.NewError("validation_printable_character", "must be a single printable character"),
)

// CSVDelimiter requires a single rune that encoding/csv accepts as a field separator:
// not a quote, carriage return, newline or the replacement character.
var CSVDelimiter = validation.NewStringRuleWithError(
	func(s string) bool {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) || r == utf8.RuneError {
			return false
		}
		return r != '"' && r != '\r' && r != '\n'
	},
	validation.NewError("validation_csv_delimiter", "must be a single character other than a quote or line break"),
)
