package customer

import (
	"errors"
	"math"
	"time"
)

var ErrNotFound = errors.New("customer not found")

// LimitUnit is the granularity of approved limits: every limit is a whole
// multiple of 100,000, fixed at registration time.
const LimitUnit = 100_000

type Customer struct {
	ID            uint64    `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	FirstName     string    `gorm:"column:first_name;size:50" json:"first_name"`
	LastName      string    `gorm:"column:last_name;size:50" json:"last_name"`
	Age           int       `gorm:"column:age" json:"age"`
	PhoneNumber   string    `gorm:"column:phone_number;size:15;index:idx_customer_phone" json:"phone_number"`
	MonthlySalary float64   `gorm:"column:monthly_salary;type:decimal(12,2)" json:"monthly_salary"`
	ApprovedLimit float64   `gorm:"column:approved_limit;type:decimal(14,2)" json:"approved_limit"`
	CurrentDebt   float64   `gorm:"column:current_debt;type:decimal(14,2)" json:"current_debt"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customer" }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }

// ApprovedLimitFor computes the registration-time borrowing limit:
// round(36 * monthly salary / 100000) * 100000. Never recomputed afterwards.
func ApprovedLimitFor(monthlySalary float64) float64 {
	return math.Round(36*monthlySalary/LimitUnit) * LimitUnit
}
