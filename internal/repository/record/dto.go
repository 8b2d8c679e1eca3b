package record

import (
	"encoding/json"
	"fmt"
	"time"

	domrec "github.com/strdex/strdex/internal/domain/record"
)

// recordDTO is the persisted JSON shape of a record. The encoding is stable:
// the same fields the API exposes, created_at in RFC 3339 UTC.
type recordDTO struct {
	ID         string        `json:"id"`
	Value      string        `json:"value"`
	Properties propertiesDTO `json:"properties"`
	CreatedAt  time.Time     `json:"created_at"`
}

type propertiesDTO struct {
	Length           int            `json:"length"`
	IsPalindrome     bool           `json:"is_palindrome"`
	UniqueCharacters int            `json:"unique_characters"`
	WordCount        int            `json:"word_count"`
	SHA256Hash       string         `json:"sha256_hash"`
	CharFrequencyMap map[string]int `json:"character_frequency_map"`
}

// marshalRecord converts a domain record into its persisted JSON form.
func marshalRecord(rec *domrec.Record) ([]byte, error) {
	props := rec.Properties()
	dto := recordDTO{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: propertiesDTO{
			Length:           props.Length(),
			IsPalindrome:     props.IsPalindrome(),
			UniqueCharacters: props.UniqueCharacters(),
			WordCount:        props.WordCount(),
			SHA256Hash:       props.SHA256Hash(),
			CharFrequencyMap: props.Frequency(),
		},
		CreatedAt: rec.CreatedAt().UTC(),
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return data, nil
}

// unmarshalRecord hydrates a domain record from its persisted JSON form.
func unmarshalRecord(data []byte) (domrec.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domrec.Record{}, fmt.Errorf("unmarshal: %w", err)
	}
	if dto.ID == "" {
		return domrec.Record{}, fmt.Errorf("record without id")
	}

	props := domrec.ReconstructProperties(
		dto.Properties.Length,
		dto.Properties.IsPalindrome,
		dto.Properties.UniqueCharacters,
		dto.Properties.WordCount,
		dto.Properties.SHA256Hash,
		dto.Properties.CharFrequencyMap,
	)
	return domrec.Reconstruct(dto.ID, dto.Value, props, dto.CreatedAt), nil
}
