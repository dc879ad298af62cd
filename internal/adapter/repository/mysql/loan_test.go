package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loandomain "approvalhub/internal/domain/loan"

	"gorm.io/gorm"
)

func TestLoanCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := makeHistoryLoan(1, 0, start, start.AddDate(0, 12, 0))
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CustomerID != 1 || got.Amount != 100_000 || got.Tenure != 12 {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestLoanGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestLoanListByCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := uint64(1); i <= 3; i++ {
		l := makeHistoryLoan(7, i, start.AddDate(0, int(i), 0), start.AddDate(1, int(i), 0))
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	// another customer's loan must not leak in
	if err := repo.Create(ctx, makeHistoryLoan(8, 99, start, start.AddDate(1, 0, 0))); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	got, err := repo.ListByCustomerID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByCustomerID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("expected start-date order, got %+v", got)
	}
}

func TestLoanListActiveByCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// ended last year
	if err := repo.Create(ctx, makeHistoryLoan(7, 1, asOf.AddDate(-2, 0, 0), asOf.AddDate(-1, 0, 0))); err != nil {
		t.Fatalf("Create ended: %v", err)
	}
	// running
	if err := repo.Create(ctx, makeHistoryLoan(7, 2, asOf.AddDate(0, -3, 0), asOf.AddDate(0, 9, 0))); err != nil {
		t.Fatalf("Create running: %v", err)
	}
	// not started yet
	if err := repo.Create(ctx, makeHistoryLoan(7, 3, asOf.AddDate(0, 1, 0), asOf.AddDate(1, 1, 0))); err != nil {
		t.Fatalf("Create future: %v", err)
	}

	got, err := repo.ListActiveByCustomerID(ctx, 7, asOf)
	if err != nil {
		t.Fatalf("ListActiveByCustomerID: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("want only the running loan, got %+v", got)
	}
}

func TestLoanCreateBatch_KeepsExplicitIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	batch := []loandomain.Loan{
		*makeHistoryLoan(7, 9001, start, start.AddDate(1, 0, 0)),
		*makeHistoryLoan(7, 9002, start, start.AddDate(1, 0, 0)),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	got, err := repo.GetByID(ctx, 9002)
	if err != nil {
		t.Fatalf("GetByID after batch: %v", err)
	}
	if got.CustomerID != 7 {
		t.Fatalf("unexpected row: %+v", got)
	}

	if err := repo.CreateBatch(ctx, nil); err != nil {
		t.Fatalf("empty CreateBatch: %v", err)
	}
}
