package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/datamask/internal/errors"
)

type ruleCase struct {
	name      string
	input     string
	shouldErr bool
}

func runRuleCases(t *testing.T, rule validation.Rule, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	runRuleCases(t, NotBlank, []ruleCase{
		{name: "column name", input: "email", shouldErr: false},
		{name: "name with inner space", input: "home phone", shouldErr: false},
		{name: "only spaces", input: "   ", shouldErr: true},
		{name: "mixed whitespace", input: " \t\n ", shouldErr: true},
		{name: "empty string is left to Required", input: "", shouldErr: false},
	})
}

func TestPrintableCharacter(t *testing.T) {
	runRuleCases(t, PrintableCharacter, []ruleCase{
		{name: "asterisk", input: "*", shouldErr: false},
		{name: "block", input: "█", shouldErr: false},
		{name: "letter", input: "X", shouldErr: false},
		{name: "space", input: " ", shouldErr: true},
		{name: "tab", input: "\t", shouldErr: true},
		{name: "control character", input: "\x07", shouldErr: true},
		{name: "two characters", input: "##", shouldErr: true},
		{name: "empty string is left to Required", input: "", shouldErr: false},
		{name: "invalid utf-8", input: "\xff", shouldErr: true},
	})
}

func TestCSVDelimiter(t *testing.T) {
	runRuleCases(t, CSVDelimiter, []ruleCase{
		{name: "comma", input: ",", shouldErr: false},
		{name: "semicolon", input: ";", shouldErr: false},
		{name: "tab", input: "\t", shouldErr: false},
		{name: "pipe", input: "|", shouldErr: false},
		{name: "quote", input: `"`, shouldErr: true},
		{name: "newline", input: "\n", shouldErr: true},
		{name: "carriage return", input: "\r", shouldErr: true},
		{name: "two characters", input: ",,", shouldErr: true},
		{name: "invalid utf-8", input: "\xff", shouldErr: true},
	})
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("keeps field messages", func(t *testing.T) {
		err := validation.Errors{"mask_character": validation.NewError("x", "must be a single printable character")}

		result := WrapValidationError(err)

		assert.ErrorIs(t, result, apperrors.ErrInvalidInput)
		assert.Contains(t, result.Error(), "mask_character: must be a single printable character")
	})
}
