// Package query implements the filter engine: it composes predicates from
// structured parameters or recognized phrases and applies them to the record
// listing. It never mutates the store.
package query

import (
	"context"
	"fmt"

	"github.com/strdex/strdex/internal/domain"
	"github.com/strdex/strdex/internal/domain/filter"
	domrec "github.com/strdex/strdex/internal/domain/record"
)

// Service evaluates filters over the record collection.
type Service struct {
	records Lister
}

// New creates a query service.
func New(records Lister) *Service {
	return &Service{records: records}
}

// ListFiltered returns the records satisfying f, in insertion order.
func (s *Service) ListFiltered(ctx context.Context, f filter.Filter) ([]domrec.Record, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]domrec.Record, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			matched = append(matched, records[i])
		}
	}
	return matched, nil
}

// ListByPhrase parses a natural-language query against the closed grammar and
// returns the matching records along with the interpreted filter.
func (s *Service) ListByPhrase(ctx context.Context, phrase string) ([]domrec.Record, filter.Filter, error) {
	f, err := filter.ParsePhrase(phrase)
	if err != nil {
		return nil, filter.Filter{}, fmt.Errorf("parse query: %w: %w", domain.ErrUnrecognizedQuery, err)
	}

	records, err := s.ListFiltered(ctx, f)
	if err != nil {
		return nil, filter.Filter{}, err
	}
	return records, f, nil
}
