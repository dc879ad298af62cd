package http

import (
	"errors"
	"net/http"
	"strconv"

	custdomain "approvalhub/internal/domain/customer"
	loandomain "approvalhub/internal/domain/loan"
	"approvalhub/internal/usecase/credit"
	"approvalhub/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type eligibilityReq struct {
	CustomerID   uint64  `json:"customer_id"   validate:"required,gte=1"`
	LoanAmount   float64 `json:"loan_amount"   validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int     `json:"tenure"        validate:"required,gte=1"`
}

func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	var req eligibilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CheckEligibility(c.Request().Context(), loan.EligibilityInput(req))
	if err != nil {
		return writeLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req eligibilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateLoan(c.Request().Context(), loan.EligibilityInput(req))
	if err != nil {
		return writeLoanErr(c, err)
	}
	// a decline is a valid outcome, not an error; only approval creates a row
	if !dto.LoanApproved {
		return c.JSON(http.StatusOK, dto)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_id must be a positive integer"})
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "customer_id must be a positive integer"})
	}
	dtos, err := h.uc.ListActiveByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return writeLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func writeLoanErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, custdomain.ErrNotFound), errors.Is(err, loandomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, credit.ErrInvalidTenure):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
