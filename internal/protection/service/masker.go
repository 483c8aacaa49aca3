package service

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaskCharacter fills masked values.
const DefaultMaskCharacter = '*'

// Masker irreversibly replaces values with a run of the mask character.
//
// The masked value has as many characters as the original, so its length is still
// disclosed. An empty value masks to an empty value.
type Masker struct {
	maskCharacter string
}

// NewMasker creates a Masker filling values with maskCharacter.
func NewMasker(maskCharacter rune) *Masker {
	return &Masker{maskCharacter: string(maskCharacter)}
}

// Mask returns the masked form of value. It never fails.
func (m *Masker) Mask(value string) string {
	return strings.Repeat(m.maskCharacter, utf8.RuneCountInString(value))
}
