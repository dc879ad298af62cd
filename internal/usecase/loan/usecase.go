package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	custdomain "approvalhub/internal/domain/customer"
	domain "approvalhub/internal/domain/loan"
	"approvalhub/internal/domain/uow"
	"approvalhub/internal/usecase/credit"

	"gorm.io/gorm"
)

// Usecase assembles the credit decision: store snapshot -> rating ->
// eligibility -> installment, and persists a loan only on approval. Both
// the read-only and the transactional path run the same evaluate step.
type Usecase struct {
	customers custdomain.Repository
	loans     domain.Repository
	uow       uow.UnitOfWork
	rating    credit.RatingPolicy
	policy    credit.EligibilityPolicy
	now       func() time.Time
}

func NewUsecase(customers custdomain.Repository, loans domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		customers: customers,
		loans:     loans,
		uow:       tx,
		rating:    credit.DefaultRatingPolicy(),
		policy:    credit.DefaultEligibilityPolicy(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithPolicies overrides the default decision policies.
func (u *Usecase) WithPolicies(r credit.RatingPolicy, e credit.EligibilityPolicy) *Usecase {
	u.rating, u.policy = r, e
	return u
}

// WithClock pins "today"; tests use it.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// evaluate runs the rating/eligibility/installment pipeline against the
// repositories it is handed, so the check path and the locked create path
// cannot drift apart.
func (u *Usecase) evaluate(ctx context.Context, loans domain.Repository, c *custdomain.Customer, in EligibilityInput) (credit.Decision, error) {
	if in.Tenure <= 0 {
		return credit.Decision{}, credit.ErrInvalidTenure
	}
	today := u.now()

	history, err := loans.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return credit.Decision{}, fmt.Errorf("list loans for customer %d: %w", c.ID, err)
	}
	active, err := loans.ListActiveByCustomerID(ctx, c.ID, today)
	if err != nil {
		return credit.Decision{}, fmt.Errorf("list active loans for customer %d: %w", c.ID, err)
	}
	var activeEMIs float64
	for i := range active {
		activeEMIs += active[i].MonthlyRepayment
	}

	rating := u.rating.Rate(credit.BuildRatingInput(history, c.ApprovedLimit, today))
	d := u.policy.Evaluate(credit.EvaluateInput{
		ApprovedLimit: c.ApprovedLimit,
		MonthlySalary: c.MonthlySalary,
		ActiveEMISum:  activeEMIs,
		Rating:        rating,
		Amount:        in.LoanAmount,
		RequestedRate: in.InterestRate,
	})
	d.Tenure = in.Tenure
	if d.Approved {
		emi, err := credit.MonthlyInstallment(in.LoanAmount, d.CorrectedRate, in.Tenure)
		if err != nil {
			return credit.Decision{}, err
		}
		d.MonthlyInstallment = emi
	}
	return d, nil
}

func (u *Usecase) getCustomer(ctx context.Context, id uint64) (*custdomain.Customer, error) {
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custdomain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// CheckEligibility is the read-only decision path; nothing is persisted.
func (u *Usecase) CheckEligibility(ctx context.Context, in EligibilityInput) (*EligibilityDTO, error) {
	c, err := u.getCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	d, err := u.evaluate(ctx, u.loans, c, in)
	if err != nil {
		return nil, err
	}
	return &EligibilityDTO{
		CustomerID:         c.ID,
		Approval:           d.Approved,
		Message:            d.Message,
		InterestRate:       d.InterestRate,
		CorrectedRate:      d.CorrectedRate,
		Tenure:             d.Tenure,
		MonthlyInstallment: d.MonthlyInstallment,
	}, nil
}

// CreateLoan re-runs the same pipeline inside a transaction that holds the
// customer row lock, then writes the loan record only on approval.
func (u *Usecase) CreateLoan(ctx context.Context, in EligibilityInput) (*CreateLoanDTO, error) {
	out := &CreateLoanDTO{CustomerID: in.CustomerID, Message: "loan not approved"}

	err := u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, c *custdomain.Customer) error {
		d, err := u.evaluate(ctx, r.Loans, c, in)
		if err != nil {
			return err
		}
		out.Message = d.Message
		if !d.Approved {
			return nil
		}

		today := u.now()
		l := &domain.Loan{
			CustomerID:       c.ID,
			Amount:           in.LoanAmount,
			Tenure:           in.Tenure,
			InterestRate:     d.CorrectedRate,
			MonthlyRepayment: d.MonthlyInstallment,
			EMIsPaidOnTime:   0,
			StartDate:        today,
			EndDate:          today.AddDate(0, in.Tenure, 0),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		out.LoanID = &l.ID
		out.LoanApproved = true
		out.MonthlyInstallment = d.MonthlyInstallment
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custdomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Get returns one loan with a summary of its owner.
func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c, err := u.getCustomer(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}
	return &LoanDetailDTO{
		LoanID: l.ID,
		Customer: CustomerSummary{
			CustomerID:  c.ID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
			Age:         c.Age,
		},
		LoanAmount:         l.Amount,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyRepayment,
		Tenure:             l.Tenure,
	}, nil
}

// ListActiveByCustomer returns the customer's running loans with the number
// of repayments still ahead of them.
func (u *Usecase) ListActiveByCustomer(ctx context.Context, customerID uint64) ([]ActiveLoanDTO, error) {
	if _, err := u.getCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	today := u.now()
	active, err := u.loans.ListActiveByCustomerID(ctx, customerID, today)
	if err != nil {
		return nil, err
	}
	out := make([]ActiveLoanDTO, 0, len(active))
	for i := range active {
		l := &active[i]
		out = append(out, ActiveLoanDTO{
			LoanID:             l.ID,
			LoanAmount:         l.Amount,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyRepayment,
			Tenure:             l.Tenure,
			RepaymentsLeft:     repaymentsLeft(l, today),
		})
	}
	return out, nil
}

// repaymentsLeft counts the complete months from asOf to the loan's end
// date, clamped to [0, tenure].
func repaymentsLeft(l *domain.Loan, asOf time.Time) int {
	months := 0
	for t := asOf.AddDate(0, 1, 0); !t.After(l.EndDate); t = t.AddDate(0, 1, 0) {
		months++
	}
	if months > l.Tenure {
		return l.Tenure
	}
	return months
}
