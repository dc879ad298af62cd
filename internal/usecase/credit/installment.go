package credit

import (
	"errors"
	"math"
)

var ErrInvalidTenure = errors.New("tenure must be a positive number of periods")

// MonthlyInstallment computes the amortized monthly payment for a principal,
// an annual percentage rate and a tenure in months. The r=0 limit degenerates
// to principal/tenure. Rounding is left to the presentation boundary.
func MonthlyInstallment(principal, annualRatePct float64, tenure int) (float64, error) {
	if tenure <= 0 {
		return 0, ErrInvalidTenure
	}
	r := annualRatePct / 12 / 100
	if r == 0 {
		return principal / float64(tenure), nil
	}
	return principal * r / (1 - math.Pow(1+r, -float64(tenure))), nil
}
