package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

type Loan struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"loan_id"`
	CustomerID       uint64    `gorm:"column:customer_id;index:idx_loan_customer" json:"customer_id"`
	Amount           float64   `gorm:"column:loan_amount;type:decimal(14,2)" json:"loan_amount"`
	Tenure           int       `gorm:"column:tenure" json:"tenure"`
	InterestRate     float64   `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	MonthlyRepayment float64   `gorm:"column:monthly_repayment;type:decimal(12,2)" json:"monthly_repayment"`
	EMIsPaidOnTime   int       `gorm:"column:emis_paid_on_time" json:"emis_paid_on_time"`
	StartDate        time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate          time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loan" }

// ActiveAt reports whether t falls inside the loan's repayment window
// [start_date, end_date].
func (l *Loan) ActiveAt(t time.Time) bool {
	return !t.Before(l.StartDate) && !t.After(l.EndDate)
}
