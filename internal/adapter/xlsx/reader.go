// Package xlsx parses the customer and loan workbooks the portfolio data
// arrives in. Columns are located by header name, so column order in the
// sheet does not matter.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"approvalhub/internal/domain/customer"
	"approvalhub/internal/domain/loan"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Header names as they appear in the source workbooks.
const (
	colCustomerID    = "Customer ID"
	colFirstName     = "First Name"
	colLastName      = "Last Name"
	colAge           = "Age"
	colPhoneNumber   = "Phone Number"
	colMonthlySalary = "Monthly Salary"
	colApprovedLimit = "Approved Limit"

	colLoanID         = "Loan ID"
	colLoanAmount     = "Loan Amount"
	colTenure         = "Tenure"
	colInterestRate   = "Interest Rate"
	colMonthlyPayment = "Monthly payment"
	colEMIsOnTime     = "EMIs paid on Time"
	colStartDate      = "Date of Approval"
	colEndDate        = "End Date"
)

// Layouts excelize may hand back for date cells, depending on the cell's
// number format.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/06",
	"02/01/2006",
}

// Source reads workbooks from disk. It satisfies ingest.Reader.
type Source struct{}

type sheet struct {
	path string
	cols map[string]int
	rows [][]string
}

func openSheet(path string) (*sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(defaultSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s of %s: %w", defaultSheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %s has no header row", path, defaultSheet)
	}
	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	return &sheet{path: path, cols: cols, rows: rows[1:]}, nil
}

func (s *sheet) cell(row []string, col string) (string, error) {
	i, ok := s.cols[col]
	if !ok {
		return "", fmt.Errorf("missing column %q", col)
	}
	if i >= len(row) {
		return "", nil
	}
	return strings.TrimSpace(row[i]), nil
}

func (s *sheet) uintCell(row []string, col string) (uint64, error) {
	v, err := s.cell(row, col)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not an id", col, v)
	}
	return n, nil
}

func (s *sheet) intCell(row []string, col string) (int, error) {
	v, err := s.cell(row, col)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not an integer", col, v)
	}
	return n, nil
}

func (s *sheet) floatCell(row []string, col string) (float64, error) {
	v, err := s.cell(row, col)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not a number", col, v)
	}
	return n, nil
}

func (s *sheet) dateCell(row []string, col string) (time.Time, error) {
	v, err := s.cell(row, col)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("column %q: %q is not a date", col, v)
}

// ReadCustomers loads the customer workbook, keeping the sheet's explicit
// customer ids and pre-computed approved limits.
func (Source) ReadCustomers(path string) ([]customer.Customer, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	out := make([]customer.Customer, 0, len(s.rows))
	for n, row := range s.rows {
		c, err := s.customerRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *sheet) customerRow(row []string) (*customer.Customer, error) {
	var (
		c   customer.Customer
		err error
	)
	if c.ID, err = s.uintCell(row, colCustomerID); err != nil {
		return nil, err
	}
	if c.FirstName, err = s.cell(row, colFirstName); err != nil {
		return nil, err
	}
	if c.LastName, err = s.cell(row, colLastName); err != nil {
		return nil, err
	}
	if c.Age, err = s.intCell(row, colAge); err != nil {
		return nil, err
	}
	if c.PhoneNumber, err = s.cell(row, colPhoneNumber); err != nil {
		return nil, err
	}
	if c.MonthlySalary, err = s.floatCell(row, colMonthlySalary); err != nil {
		return nil, err
	}
	if c.ApprovedLimit, err = s.floatCell(row, colApprovedLimit); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadLoans loads the loan workbook, keeping the sheet's explicit loan ids.
func (Source) ReadLoans(path string) ([]loan.Loan, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	out := make([]loan.Loan, 0, len(s.rows))
	for n, row := range s.rows {
		l, err := s.loanRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		out = append(out, *l)
	}
	return out, nil
}

func (s *sheet) loanRow(row []string) (*loan.Loan, error) {
	var (
		l   loan.Loan
		err error
	)
	if l.ID, err = s.uintCell(row, colLoanID); err != nil {
		return nil, err
	}
	if l.CustomerID, err = s.uintCell(row, colCustomerID); err != nil {
		return nil, err
	}
	if l.Amount, err = s.floatCell(row, colLoanAmount); err != nil {
		return nil, err
	}
	if l.Tenure, err = s.intCell(row, colTenure); err != nil {
		return nil, err
	}
	if l.InterestRate, err = s.floatCell(row, colInterestRate); err != nil {
		return nil, err
	}
	if l.MonthlyRepayment, err = s.floatCell(row, colMonthlyPayment); err != nil {
		return nil, err
	}
	if l.EMIsPaidOnTime, err = s.intCell(row, colEMIsOnTime); err != nil {
		return nil, err
	}
	if l.StartDate, err = s.dateCell(row, colStartDate); err != nil {
		return nil, err
	}
	if l.EndDate, err = s.dateCell(row, colEndDate); err != nil {
		return nil, err
	}
	return &l, nil
}
