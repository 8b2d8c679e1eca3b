package query

import (
	"context"

	domrec "github.com/strdex/strdex/internal/domain/record"
)

// Lister provides the record listing the filter engine evaluates against.
type Lister interface {
	List(ctx context.Context) ([]domrec.Record, error)
}
