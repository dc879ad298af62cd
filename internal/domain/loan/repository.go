package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
	ListActiveByCustomerID(ctx context.Context, customerID uint64, asOf time.Time) ([]Loan, error)
	CreateBatch(ctx context.Context, ls []Loan) error
}
