package chi

import (
	"time"

	domrec "github.com/strdex/strdex/internal/domain/record"
)

// errorCode identifies the failure class in error responses.
type errorCode string

const (
	codeBadRequest        errorCode = "bad_request"
	codeValidationFailed  errorCode = "validation_failed"
	codeNotFound          errorCode = "not_found"
	codeConflict          errorCode = "conflict"
	codeUnrecognizedQuery errorCode = "unrecognized_query"
	codeStorageError      errorCode = "storage_error"
	codeInternalError     errorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// RecordResponse is the JSON shape of a record.
type RecordResponse struct {
	ID         string             `json:"id"`
	Value      string             `json:"value"`
	Properties PropertiesResponse `json:"properties"`
	CreatedAt  time.Time          `json:"created_at"`
}

// PropertiesResponse is the JSON shape of derived properties.
type PropertiesResponse struct {
	Length           int            `json:"length"`
	IsPalindrome     bool           `json:"is_palindrome"`
	UniqueCharacters int            `json:"unique_characters"`
	WordCount        int            `json:"word_count"`
	SHA256Hash       string         `json:"sha256_hash"`
	CharFrequencyMap map[string]int `json:"character_frequency_map"`
}

// ListResponse is the filtered-listing body.
type ListResponse struct {
	Data           []RecordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language query was parsed.
type InterpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// NaturalLanguageResponse is the phrase-filter body.
type NaturalLanguageResponse struct {
	Data             []RecordResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// HealthResponse is the health report body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func recordToResponse(rec *domrec.Record) RecordResponse {
	props := rec.Properties()
	return RecordResponse{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: PropertiesResponse{
			Length:           props.Length(),
			IsPalindrome:     props.IsPalindrome(),
			UniqueCharacters: props.UniqueCharacters(),
			WordCount:        props.WordCount(),
			SHA256Hash:       props.SHA256Hash(),
			CharFrequencyMap: props.Frequency(),
		},
		CreatedAt: rec.CreatedAt(),
	}
}

func recordsToResponse(records []domrec.Record) []RecordResponse {
	items := make([]RecordResponse, len(records))
	for i := range records {
		items[i] = recordToResponse(&records[i])
	}
	return items
}
