// Package record persists record aggregates through a db.Store.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/strdex/strdex/internal/db"
	"github.com/strdex/strdex/internal/domain"
	domrec "github.com/strdex/strdex/internal/domain/record"
)

// store is the consumer interface for records (ISP).
type store interface {
	PutNX(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([][]byte, error)
}

// Repo implements usecase/record.Repository.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create inserts a record, failing on a duplicate id.
func (r *Repo) Create(ctx context.Context, rec *domrec.Record) error {
	data, err := marshalRecord(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", rec.ID(), err)
	}

	if err := r.store.PutNX(ctx, rec.ID(), data); err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("put record %s: %w", rec.ID(), err)
	}
	return nil
}

// Get returns the record with the given id.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	data, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domrec.Record{}, domain.ErrNotFound
		}
		return domrec.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}

	rec, err := unmarshalRecord(data)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return rec, nil
}

// List returns all records in insertion order.
func (r *Repo) List(ctx context.Context) ([]domrec.Record, error) {
	raw, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]domrec.Record, 0, len(raw))
	for _, data := range raw {
		rec, err := unmarshalRecord(data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete removes the record with the given id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}
