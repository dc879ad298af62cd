package custmock

import (
	"context"

	domain "approvalhub/internal/domain/customer"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies customer.Repository. Fill in
// the fields a test needs; unfilled getters act like an empty table.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Customer) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByPhoneFn       func(ctx context.Context, phone string) (*domain.Customer, error)
	CreateBatchFn      func(ctx context.Context, cs []domain.Customer) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CreateBatch(ctx context.Context, cs []domain.Customer) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, cs)
	}
	return nil
}
