package customer

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "approvalhub/internal/domain/customer"
	"approvalhub/internal/testutil/custmock"
)

func TestRegister_Success(t *testing.T) {
	var created *domain.Customer
	uc := NewUsecase(&custmock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			c.ID = 7
			created = c
			return nil
		},
	})

	dto, err := uc.Register(context.Background(), RegisterInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           30,
		MonthlyIncome: 5_000,
		PhoneNumber:   "9876543210",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	// round(36*5000/100000) = round(1.8) = 2 => 200000
	if dto.ApprovedLimit != 200_000 {
		t.Fatalf("approved limit = %v, want 200000", dto.ApprovedLimit)
	}
	if created == nil || created.ApprovedLimit != 200_000 {
		t.Fatalf("persisted customer limit wrong: %+v", created)
	}
	if dto.CustomerID != 7 || dto.Name != "Asha Rao" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestRegister_LimitIsMultipleOfUnit(t *testing.T) {
	uc := NewUsecase(&custmock.Repo{})
	for _, salary := range []float64{1_234, 5_000, 27_777, 100_000, 250_000} {
		dto, err := uc.Register(context.Background(), RegisterInput{
			FirstName: "A", Age: 40, MonthlyIncome: salary, PhoneNumber: "1",
		})
		if err != nil {
			t.Fatalf("salary %v: %v", salary, err)
		}
		if rem := int64(dto.ApprovedLimit) % domain.LimitUnit; rem != 0 || dto.ApprovedLimit < 0 {
			t.Fatalf("salary %v: limit %v is not a non-negative multiple of %d", salary, dto.ApprovedLimit, domain.LimitUnit)
		}
	}
}

func TestRegister_AgeBounds(t *testing.T) {
	uc := NewUsecase(&custmock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			t.Fatalf("Create must not be called for invalid age")
			return nil
		},
	})
	for _, age := range []int{17, 61, 0} {
		if _, err := uc.Register(context.Background(), RegisterInput{
			FirstName: "A", Age: age, MonthlyIncome: 5_000, PhoneNumber: "1",
		}); err == nil {
			t.Fatalf("age %d: want error", age)
		}
	}
}

func TestRegister_DuplicatePhone(t *testing.T) {
	uc := NewUsecase(&custmock.Repo{
		GetByPhoneFn: func(ctx context.Context, phone string) (*domain.Customer, error) {
			return &domain.Customer{ID: 3, PhoneNumber: phone}, nil
		},
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			t.Fatalf("Create must not be called for a duplicate phone")
			return nil
		},
	})
	_, err := uc.Register(context.Background(), RegisterInput{
		FirstName: "A", Age: 30, MonthlyIncome: 5_000, PhoneNumber: "9876543210",
	})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("err = %v, want duplicate-phone error", err)
	}
}

func TestRegister_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("db down")
	uc := NewUsecase(&custmock.Repo{
		GetByPhoneFn: func(ctx context.Context, phone string) (*domain.Customer, error) {
			return nil, boom
		},
	})
	if _, err := uc.Register(context.Background(), RegisterInput{
		FirstName: "A", Age: 30, MonthlyIncome: 5_000, PhoneNumber: "1",
	}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the store error", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&custmock.Repo{})
	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
