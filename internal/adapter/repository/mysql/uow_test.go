package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	custdomain "approvalhub/internal/domain/customer"
	"approvalhub/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)
	loanRepo := NewLoanRepository(db)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		c := makeCustomer("9876543210")
		if err := r.Customers.Create(ctx, c); err != nil {
			return err
		}
		if c.ID == 0 {
			t.Fatalf("customer auto ID not set")
		}
		return r.Loans.Create(ctx, makeHistoryLoan(c.ID, 0, start, start.AddDate(1, 0, 0)))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	c, err := custRepo.GetByPhone(ctx, "9876543210")
	if err != nil {
		t.Fatalf("customer not visible after commit: %v", err)
	}
	loans, err := loanRepo.ListByCustomerID(ctx, c.ID)
	if err != nil || len(loans) != 1 {
		t.Fatalf("loan not visible after commit: %v (%d rows)", err, len(loans))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)

	sentinel := errors.New("boom")
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Customers.Create(ctx, makeCustomer("111")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := custRepo.GetByPhone(ctx, "111"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected customer absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinCustomerTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)
	loanRepo := NewLoanRepository(db)

	seed := makeCustomer("9876543210")
	if err := custRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := guow.WithinCustomerTx(ctx, seed.ID, func(r uow.Repos, c *custdomain.Customer) error {
		if c == nil || c.ID != seed.ID || c.PhoneNumber != "9876543210" {
			t.Fatalf("unexpected locked customer: %+v", c)
		}
		return r.Loans.Create(ctx, makeHistoryLoan(c.ID, 0, start, start.AddDate(1, 0, 0)))
	}); err != nil {
		t.Fatalf("WithinCustomerTx commit err: %v", err)
	}

	loans, err := loanRepo.ListByCustomerID(ctx, seed.ID)
	if err != nil || len(loans) != 1 {
		t.Fatalf("loan not visible after commit: %v (%d rows)", err, len(loans))
	}
}

func TestGormUoW_WithinCustomerTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)
	loanRepo := NewLoanRepository(db)

	seed := makeCustomer("222")
	if err := custRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	sentinel := errors.New("stop")
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_ = guow.WithinCustomerTx(ctx, seed.ID, func(r uow.Repos, c *custdomain.Customer) error {
		if err := r.Loans.Create(ctx, makeHistoryLoan(c.ID, 0, start, start.AddDate(1, 0, 0))); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	loans, err := loanRepo.ListByCustomerID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("post-rollback list: %v", err)
	}
	if len(loans) != 0 {
		t.Fatalf("expected no loans after rollback, got %d", len(loans))
	}
}

func TestGormUoW_WithinCustomerTx_CustomerNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinCustomerTx(context.Background(), 404, func(r uow.Repos, c *custdomain.Customer) error {
		t.Fatalf("callback should not run when the customer is missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
