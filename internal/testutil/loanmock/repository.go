package loanmock

import (
	"context"
	"time"

	domain "approvalhub/internal/domain/loan"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Unfilled
// list methods behave like an empty table; unfilled getters return not found.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListByCustomerIDFn       func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	ListActiveByCustomerIDFn func(ctx context.Context, customerID uint64, asOf time.Time) ([]domain.Loan, error)
	CreateBatchFn            func(ctx context.Context, ls []domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByCustomerID(ctx context.Context, customerID uint64, asOf time.Time) ([]domain.Loan, error) {
	if m.ListActiveByCustomerIDFn != nil {
		return m.ListActiveByCustomerIDFn(ctx, customerID, asOf)
	}
	return nil, nil
}

func (m *Repo) CreateBatch(ctx context.Context, ls []domain.Loan) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ls)
	}
	return nil
}
