// Package record implements the record CRUD use cases.
package record

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	domrec "github.com/strdex/strdex/internal/domain/record"
)

// Service handles record CRUD operations. Records are immutable: the only
// lifecycle transitions are creation and deletion.
type Service struct {
	repo    Repository
	created prometheus.Counter
	deleted prometheus.Counter
}

// New creates a record service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches created/deleted counters. Either may be nil.
func (s *Service) WithMetrics(created, deleted prometheus.Counter) *Service {
	s.created = created
	s.deleted = deleted
	return s
}

// Create analyzes value and inserts the resulting record. A value whose
// digest is already stored is a conflict (domain.ErrAlreadyExists), never a
// silent overwrite.
func (s *Service) Create(ctx context.Context, value string) (domrec.Record, error) {
	rec := domrec.New(value)

	if err := s.repo.Create(ctx, &rec); err != nil {
		return domrec.Record{}, fmt.Errorf("create record: %w", err)
	}

	if s.created != nil {
		s.created.Inc()
	}
	return rec, nil
}

// GetByValue retrieves the record for value via its digest.
func (s *Service) GetByValue(ctx context.Context, value string) (domrec.Record, error) {
	rec, err := s.repo.Get(ctx, domrec.Digest(value))
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns all records in insertion order.
func (s *Service) List(ctx context.Context) ([]domrec.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// DeleteByValue removes the record for value via its digest.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, domrec.Digest(value)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if s.deleted != nil {
		s.deleted.Inc()
	}
	return nil
}
