package credit

import "fmt"

// Reason classifies a business decline. Declines are decisions, not errors;
// infrastructure failures surface as Go errors instead and must never be
// folded into a decline.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonLimitExceeded Reason = "limit_exceeded"
	ReasonAffordability Reason = "affordability_failed"
	ReasonRatingTooLow  Reason = "rating_too_low"
)

// Decision is the ephemeral outcome of one eligibility evaluation.
type Decision struct {
	Approved           bool
	Reason             Reason
	Message            string
	Rating             int
	InterestRate       float64
	CorrectedRate      float64
	Tenure             int
	MonthlyInstallment float64
}

type EvaluateInput struct {
	ApprovedLimit float64
	MonthlySalary float64
	ActiveEMISum  float64
	Rating        int
	Amount        float64
	RequestedRate float64
}

// Evaluate applies the limit, affordability and rating-slab checks in order,
// short-circuiting on the first failure. The corrected rate of an approval
// is max(requested rate, slab floor).
func (p EligibilityPolicy) Evaluate(in EvaluateInput) Decision {
	d := Decision{Rating: in.Rating, InterestRate: in.RequestedRate}

	if in.Amount > in.ApprovedLimit {
		d.Reason = ReasonLimitExceeded
		d.Message = fmt.Sprintf("loan amount %.2f exceeds approved limit %.2f", in.Amount, in.ApprovedLimit)
		return d
	}
	if in.ActiveEMISum > p.MaxEMIShare*in.MonthlySalary {
		d.Reason = ReasonAffordability
		d.Message = fmt.Sprintf("current EMIs %.2f exceed %.0f%% of monthly salary", in.ActiveEMISum, p.MaxEMIShare*100)
		return d
	}
	for _, s := range p.Slabs {
		if in.Rating >= s.MinRating {
			d.Approved = true
			d.CorrectedRate = in.RequestedRate
			if d.CorrectedRate < s.MinRate {
				d.CorrectedRate = s.MinRate
			}
			d.Message = "loan approved"
			return d
		}
	}
	d.Reason = ReasonRatingTooLow
	d.Message = fmt.Sprintf("credit rating %d is below the lending threshold", in.Rating)
	return d
}
