package record

import (
	"context"

	domrec "github.com/strdex/strdex/internal/domain/record"
)

// Repository defines the storage contract for records.
type Repository interface {
	Create(ctx context.Context, rec *domrec.Record) error
	Get(ctx context.Context, id string) (domrec.Record, error)
	List(ctx context.Context) ([]domrec.Record, error)
	Delete(ctx context.Context, id string) error
}
