package loan

// EligibilityInput is the shared request shape of check-eligibility and
// create-loan.
type EligibilityInput struct {
	CustomerID   uint64  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type EligibilityDTO struct {
	CustomerID         uint64  `json:"customer_id"`
	Approval           bool    `json:"approval"`
	Message            string  `json:"message,omitempty"`
	InterestRate       float64 `json:"interest_rate"`
	CorrectedRate      float64 `json:"corrected_interest_rate"`
	Tenure             int     `json:"tenure"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

type CreateLoanDTO struct {
	LoanID             *uint64 `json:"loan_id"`
	CustomerID         uint64  `json:"customer_id"`
	LoanApproved       bool    `json:"loan_approved"`
	Message            string  `json:"message"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

type CustomerSummary struct {
	CustomerID  uint64 `json:"customer_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type LoanDetailDTO struct {
	LoanID             uint64          `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         float64         `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment float64         `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

type ActiveLoanDTO struct {
	LoanID             uint64  `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	Tenure             int     `json:"tenure"`
	RepaymentsLeft     int     `json:"repayments_left"`
}
