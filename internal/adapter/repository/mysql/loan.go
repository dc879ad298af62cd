package mysql

import (
	"context"
	"time"

	loandomain "approvalhub/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loandomain.Loan, error) {
	var out loandomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID uint64) ([]loandomain.Loan, error) {
	var out []loandomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveByCustomerID(ctx context.Context, customerID uint64, asOf time.Time) ([]loandomain.Loan, error) {
	var out []loandomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND start_date <= ? AND end_date >= ?", customerID, asOf, asOf).
		Order("start_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CreateBatch(ctx context.Context, ls []loandomain.Loan) error {
	if len(ls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ls, 500).Error
}
