// Package service provides the stateless cell classifier and masking transform.
package service

import (
	"regexp"
)

// Sensitive pattern names.
const (
	PatternEmail = "email"
	PatternSSN   = "ssn"
	PatternPhone = "phone"
)

// Pattern is a named regular expression that marks a cell as sensitive.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// DefaultPatterns returns the built-in sensitive patterns in evaluation order.
// Each pattern matches anywhere in the cell, not only the whole value.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: PatternEmail, Regexp: regexp.MustCompile(`\S+@\S+\.\S+`)},
		{Name: PatternSSN, Regexp: regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)},
		{Name: PatternPhone, Regexp: regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)},
	}
}

// PatternClassifier decides whether a cell value is sensitive.
// It holds compiled patterns only and is safe for concurrent use.
type PatternClassifier struct {
	patterns []Pattern
}

// NewPatternClassifier creates a PatternClassifier with DefaultPatterns.
func NewPatternClassifier() *PatternClassifier {
	return NewPatternClassifierWithPatterns(DefaultPatterns())
}

// NewPatternClassifierWithPatterns creates a PatternClassifier that checks patterns in order.
func NewPatternClassifierWithPatterns(patterns []Pattern) *PatternClassifier {
	return &PatternClassifier{patterns: patterns}
}

// Classify returns the name of the first pattern found in value.
func (c *PatternClassifier) Classify(value string) (string, bool) {
	for _, p := range c.patterns {
		if p.Regexp.MatchString(value) {
			return p.Name, true
		}
	}
	return "", false
}

// IsSensitive reports whether any pattern is found in value.
func (c *PatternClassifier) IsSensitive(value string) bool {
	_, ok := c.Classify(value)
	return ok
}
