package customer

import (
	"context"
	"errors"
	"fmt"

	domain "approvalhub/internal/domain/customer"

	"gorm.io/gorm"
)

const (
	minAge = 18
	maxAge = 60
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	PhoneNumber   string  `json:"phone_number"`
}

type CustomerDTO struct {
	CustomerID    uint64  `json:"customer_id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	ApprovedLimit float64 `json:"approved_limit"`
	PhoneNumber   string  `json:"phone_number"`
}

// Register creates a customer with its approved limit fixed from the
// monthly income. The limit is never recomputed afterwards.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.Age < minAge || in.Age > maxAge {
		return nil, fmt.Errorf("age %d is not between %d and %d", in.Age, minAge, maxAge)
	}
	if in.MonthlyIncome <= 0 {
		return nil, errors.New("monthly income must be positive")
	}
	if in.FirstName == "" || in.PhoneNumber == "" {
		return nil, errors.New("first name and phone number are required")
	}

	existing, err := u.repo.GetByPhone(ctx, in.PhoneNumber)
	switch {
	case err == nil:
		return nil, fmt.Errorf("phone number %s is already registered to customer %d", in.PhoneNumber, existing.ID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	c := &domain.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlySalary: in.MonthlyIncome,
		ApprovedLimit: domain.ApprovedLimitFor(in.MonthlyIncome),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &CustomerDTO{
		CustomerID:    c.ID,
		Name:          c.FullName(),
		Age:           c.Age,
		MonthlyIncome: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &CustomerDTO{
		CustomerID:    c.ID,
		Name:          c.FullName(),
		Age:           c.Age,
		MonthlyIncome: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}, nil
}
