package record

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Record is a stored string with its derived properties (immutable value object).
// The ID is the SHA-256 digest of the value, so identical content always maps
// to the same record.
type Record struct {
	id        string
	value     string
	props     Properties
	createdAt time.Time
}

// Properties is the derived, immutable snapshot of a string's metrics.
type Properties struct {
	length       int
	isPalindrome bool
	uniqueChars  int
	wordCount    int
	sha256Hash   string
	frequency    map[string]int
}

// New analyzes value and creates a Record stamped with the current UTC time.
// Analysis is total: every input, including the empty string, is valid.
func New(value string) Record {
	props := Analyze(value)
	return Record{
		id:        props.sha256Hash,
		value:     value,
		props:     props,
		createdAt: time.Now().UTC(),
	}
}

// Reconstruct creates a Record from persisted fields without re-analysis
// (storage hydration).
func Reconstruct(id, value string, props Properties, createdAt time.Time) Record {
	return Record{id: id, value: value, props: props, createdAt: createdAt}
}

// ID returns the record identifier (SHA-256 hex digest of the value).
func (r *Record) ID() string { return r.id }

// Value returns the original input string, stored verbatim.
func (r *Record) Value() string { return r.value }

// Properties returns the derived property snapshot.
func (r *Record) Properties() Properties { return r.props }

// CreatedAt returns the insertion timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// Digest returns the SHA-256 hex digest of value. It doubles as the record
// ID, so lookups by value resolve through it.
func Digest(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Analyze computes the full property set for value. Pure and deterministic.
//
// All character-level metrics operate on runes, so multi-byte input keeps
// sum(frequency) == length. The palindrome check folds case but does not
// strip whitespace or punctuation: "A man a plan" is not a palindrome.
func Analyze(value string) Properties {
	runes := []rune(value)

	frequency := make(map[string]int, len(runes))
	for _, r := range runes {
		frequency[string(r)]++
	}

	return Properties{
		length:       len(runes),
		isPalindrome: isPalindrome(value),
		uniqueChars:  len(frequency),
		wordCount:    len(strings.Fields(value)),
		sha256Hash:   Digest(value),
		frequency:    frequency,
	}
}

// ReconstructProperties creates Properties from persisted fields without
// re-analysis.
func ReconstructProperties(
	length int, palindrome bool, uniqueChars, wordCount int,
	sha256Hash string, frequency map[string]int,
) Properties {
	return Properties{
		length:       length,
		isPalindrome: palindrome,
		uniqueChars:  uniqueChars,
		wordCount:    wordCount,
		sha256Hash:   sha256Hash,
		frequency:    frequency,
	}
}

// Length returns the rune count of the value.
func (p Properties) Length() int { return p.length }

// IsPalindrome reports whether the case-folded value reads the same reversed.
func (p Properties) IsPalindrome() bool { return p.isPalindrome }

// UniqueCharacters returns the count of distinct runes (case-sensitive).
func (p Properties) UniqueCharacters() int { return p.uniqueChars }

// WordCount returns the number of whitespace-delimited non-empty tokens.
func (p Properties) WordCount() int { return p.wordCount }

// SHA256Hash returns the hex digest of the value.
func (p Properties) SHA256Hash() string { return p.sha256Hash }

// Frequency returns a copy of the character frequency map (rune →
// occurrences, case-sensitive, whitespace and punctuation included). Copying
// keeps the snapshot immutable even when callers mutate the result.
func (p Properties) Frequency() map[string]int {
	out := make(map[string]int, len(p.frequency))
	for k, v := range p.frequency {
		out[k] = v
	}
	return out
}

// Contains reports whether ch occurs in the value at least once.
func (p Properties) Contains(ch string) bool { return p.frequency[ch] > 0 }

func isPalindrome(value string) bool {
	runes := []rune(strings.ToLower(value))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
