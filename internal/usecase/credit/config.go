// Package credit holds the decision engine: the rating computation, the
// eligibility slabs and the installment math. Everything tunable lives in
// the policy structs here so a policy change never touches algorithm code.
package credit

// BandScore awards Score to any signal value >= Min.
type BandScore struct {
	Min   float64
	Score int
}

type RatingPolicy struct {
	// OnTimeBands score the on-time EMI percentage; the highest satisfied
	// Min wins, anything below the lowest band scores DefaultScore.
	OnTimeBands []BandScore

	// LoanCountScores and YearLoanScores are exact-match tables. Values not
	// present score DefaultScore: an unknown count is moderate risk, not a
	// clean history.
	LoanCountScores map[int]int
	YearLoanScores  map[int]int

	// Approved-volume tiers: >= VolumeHigh scores HighScore, >= VolumeModerate
	// scores ModerateScore, any positive amount scores LowScore, otherwise
	// DefaultScore.
	VolumeHigh     float64
	VolumeModerate float64
	HighScore      int
	ModerateScore  int
	LowScore       int

	DefaultScore int

	// ScoreDivisor rescales the bucket sum to 0-100. The default stays at
	// 25 even though four buckets top out at 20, so the attainable maximum
	// rating is 80.
	ScoreDivisor float64
}

func DefaultRatingPolicy() RatingPolicy {
	return RatingPolicy{
		OnTimeBands: []BandScore{
			{Min: 100, Score: 5},
			{Min: 95, Score: 4},
			{Min: 90, Score: 3},
			{Min: 80, Score: 2},
		},
		LoanCountScores: map[int]int{0: 5, 3: 4, 6: 3, 9: 2, 12: 1},
		YearLoanScores:  map[int]int{0: 5, 2: 4, 4: 3, 6: 1},
		VolumeHigh:      1_000_000,
		VolumeModerate:  250_000,
		HighScore:       5,
		ModerateScore:   3,
		LowScore:        1,
		DefaultScore:    1,
		ScoreDivisor:    25,
	}
}

// Slab maps a minimum rating to the lowest interest rate a loan in that
// rating range may carry.
type Slab struct {
	MinRating int
	MinRate   float64
}

type EligibilityPolicy struct {
	// MaxEMIShare is the fraction of monthly salary that active EMIs may
	// consume before new lending stops.
	MaxEMIShare float64
	// Slabs must be sorted by MinRating descending; a rating below the last
	// slab is declined outright.
	Slabs []Slab
}

func DefaultEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{
		MaxEMIShare: 0.5,
		Slabs: []Slab{
			{MinRating: 50, MinRate: 12},
			{MinRating: 30, MinRate: 16},
			{MinRating: 10, MinRate: 20},
		},
	}
}
