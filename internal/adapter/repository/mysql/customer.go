package mysql

import (
	"context"

	custdomain "approvalhub/internal/domain/customer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *custdomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*custdomain.Customer, error) {
	var out custdomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate holds the row lock until the surrounding transaction
// ends. sqlite (tests) has no SELECT ... FOR UPDATE; its single-writer
// model serializes writers anyway.
func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*custdomain.Customer, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out custdomain.Customer
	res := q.Where("customer_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*custdomain.Customer, error) {
	var out custdomain.Customer
	res := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) CreateBatch(ctx context.Context, cs []custdomain.Customer) error {
	if len(cs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(cs, 500).Error
}
