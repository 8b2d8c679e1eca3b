package health

import "context"

// StoragePinger checks backing storage availability.
type StoragePinger interface {
	Ping(ctx context.Context) error
}
