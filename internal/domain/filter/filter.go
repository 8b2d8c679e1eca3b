// Package filter builds predicates over records from structured parameters
// or a closed set of natural-language phrasings.
package filter

import (
	"fmt"
	"unicode/utf8"

	"github.com/strdex/strdex/internal/domain/record"
)

// Filter is a structured predicate over records. All supplied fields are
// combined with logical AND; nil fields are ignored.
type Filter struct {
	isPalindrome *bool
	minLength    *int
	maxLength    *int
	wordCount    *int
	containsChar string
}

// New validates and creates a Filter.
// Length and word-count bounds must be non-negative, minLength <= maxLength
// when both are set, and containsCharacter must be exactly one character.
func New(isPalindrome *bool, minLength, maxLength, wordCount *int, containsCharacter string) (Filter, error) {
	if minLength != nil && *minLength < 0 {
		return Filter{}, fmt.Errorf("min_length must be non-negative, got %d", *minLength)
	}
	if maxLength != nil && *maxLength < 0 {
		return Filter{}, fmt.Errorf("max_length must be non-negative, got %d", *maxLength)
	}
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return Filter{}, fmt.Errorf("min_length %d exceeds max_length %d", *minLength, *maxLength)
	}
	if wordCount != nil && *wordCount < 0 {
		return Filter{}, fmt.Errorf("word_count must be non-negative, got %d", *wordCount)
	}
	if containsCharacter != "" && utf8.RuneCountInString(containsCharacter) != 1 {
		return Filter{}, fmt.Errorf("contains_character must be a single character, got %q", containsCharacter)
	}

	return Filter{
		isPalindrome: isPalindrome,
		minLength:    minLength,
		maxLength:    maxLength,
		wordCount:    wordCount,
		containsChar: containsCharacter,
	}, nil
}

// IsPalindrome returns the palindrome condition.
func (f Filter) IsPalindrome() *bool { return f.isPalindrome }

// MinLength returns the inclusive lower length bound.
func (f Filter) MinLength() *int { return f.minLength }

// MaxLength returns the inclusive upper length bound.
func (f Filter) MaxLength() *int { return f.maxLength }

// WordCount returns the exact word-count condition.
func (f Filter) WordCount() *int { return f.wordCount }

// ContainsCharacter returns the character-membership condition ("" if unset).
func (f Filter) ContainsCharacter() string { return f.containsChar }

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool {
	return f.isPalindrome == nil && f.minLength == nil && f.maxLength == nil &&
		f.wordCount == nil && f.containsChar == ""
}

// Matches reports whether rec satisfies every supplied condition.
func (f Filter) Matches(rec *record.Record) bool {
	props := rec.Properties()

	if f.isPalindrome != nil && props.IsPalindrome() != *f.isPalindrome {
		return false
	}
	if f.minLength != nil && props.Length() < *f.minLength {
		return false
	}
	if f.maxLength != nil && props.Length() > *f.maxLength {
		return false
	}
	if f.wordCount != nil && props.WordCount() != *f.wordCount {
		return false
	}
	if f.containsChar != "" && !props.Contains(f.containsChar) {
		return false
	}
	return true
}

// Applied returns the supplied conditions as a field map for API responses.
func (f Filter) Applied() map[string]any {
	m := make(map[string]any)
	if f.isPalindrome != nil {
		m["is_palindrome"] = *f.isPalindrome
	}
	if f.minLength != nil {
		m["min_length"] = *f.minLength
	}
	if f.maxLength != nil {
		m["max_length"] = *f.maxLength
	}
	if f.wordCount != nil {
		m["word_count"] = *f.wordCount
	}
	if f.containsChar != "" {
		m["contains_character"] = f.containsChar
	}
	return m
}
