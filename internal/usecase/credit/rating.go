package credit

import (
	"math"
	"time"

	"approvalhub/internal/domain/loan"
)

// RatingInput is the ephemeral aggregate a rating is computed from. It is
// rebuilt from the loan history on every request and never stored.
type RatingInput struct {
	OnTimePercent  float64
	LoanCount      int
	LoansThisYear  int
	ApprovedVolume float64
	ActiveLoanSum  float64
	ApprovedLimit  float64
}

// BuildRatingInput derives the four raw signals plus the over-extension
// inputs from a customer's full loan history. The on-time signal is the
// percentage of all scheduled EMIs that were paid on time.
func BuildRatingInput(history []loan.Loan, approvedLimit float64, now time.Time) RatingInput {
	in := RatingInput{ApprovedLimit: approvedLimit}
	var paid, scheduled int
	for i := range history {
		l := &history[i]
		in.LoanCount++
		in.ApprovedVolume += l.Amount
		if l.StartDate.Year() == now.Year() {
			in.LoansThisYear++
		}
		if l.ActiveAt(now) {
			in.ActiveLoanSum += l.Amount
		}
		paid += l.EMIsPaidOnTime
		scheduled += l.Tenure
	}
	if scheduled > 0 {
		in.OnTimePercent = math.Round(100 * float64(paid) / float64(scheduled))
	}
	return in
}

// Rate maps the history aggregate to a credit rating in [0,100]. A borrower
// whose active principal exceeds the approved limit rates 0 regardless of
// the other signals.
func (p RatingPolicy) Rate(in RatingInput) int {
	if in.ActiveLoanSum > in.ApprovedLimit {
		return 0
	}
	sum := p.onTimeScore(in.OnTimePercent) +
		p.tableScore(p.LoanCountScores, in.LoanCount) +
		p.tableScore(p.YearLoanScores, in.LoansThisYear) +
		p.volumeScore(in.ApprovedVolume)

	r := int(math.Round(float64(sum) / p.ScoreDivisor * 100))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func (p RatingPolicy) onTimeScore(pct float64) int {
	score := p.DefaultScore
	best := math.Inf(-1)
	for _, b := range p.OnTimeBands {
		if pct >= b.Min && b.Min > best {
			score, best = b.Score, b.Min
		}
	}
	return score
}

func (p RatingPolicy) tableScore(table map[int]int, v int) int {
	if s, ok := table[v]; ok {
		return s
	}
	return p.DefaultScore
}

func (p RatingPolicy) volumeScore(v float64) int {
	switch {
	case v >= p.VolumeHigh:
		return p.HighScore
	case v >= p.VolumeModerate:
		return p.ModerateScore
	case v > 0:
		return p.LowScore
	default:
		return p.DefaultScore
	}
}
