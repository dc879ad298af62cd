package ingest

import (
	"context"
	"fmt"
	"log"

	"approvalhub/internal/domain/customer"
	"approvalhub/internal/domain/loan"
	"approvalhub/internal/domain/uow"
	"approvalhub/pkg/id"
)

// Reader abstracts the spreadsheet source so tests can feed rows directly.
type Reader interface {
	ReadCustomers(path string) ([]customer.Customer, error)
	ReadLoans(path string) ([]loan.Loan, error)
}

type Usecase struct {
	reader       Reader
	uow          uow.UnitOfWork
	customerPath string
	loanPath     string
}

func NewUsecase(r Reader, tx uow.UnitOfWork, customerPath, loanPath string) *Usecase {
	return &Usecase{reader: r, uow: tx, customerPath: customerPath, loanPath: loanPath}
}

type Result struct {
	BatchID   string `json:"batch_id"`
	Customers int    `json:"customers"`
	Loans     int    `json:"loans"`
}

// Run imports both workbooks. Each file commits in its own transaction so a
// bad loan sheet does not roll back already-imported customers.
func (u *Usecase) Run(ctx context.Context) (*Result, error) {
	res := &Result{BatchID: id.NewID32()}

	customers, err := u.reader.ReadCustomers(u.customerPath)
	if err != nil {
		return nil, err
	}
	if err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Customers.CreateBatch(ctx, customers)
	}); err != nil {
		return nil, fmt.Errorf("import customers: %w", err)
	}
	res.Customers = len(customers)

	loans, err := u.reader.ReadLoans(u.loanPath)
	if err != nil {
		return nil, err
	}
	if err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.CreateBatch(ctx, loans)
	}); err != nil {
		return nil, fmt.Errorf("import loans: %w", err)
	}
	res.Loans = len(loans)

	log.Printf("ingest %s: %d customers, %d loans", res.BatchID, res.Customers, res.Loans)
	return res, nil
}
