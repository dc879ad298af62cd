package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	// GetByIDForUpdate locks the customer row for the rest of the
	// surrounding transaction; create-loan's read-check-write runs under it.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	CreateBatch(ctx context.Context, cs []Customer) error
}
