package service

import "time"

const (
	MinLoanAmount = 500_000.0     // ₹5 lakh
	MaxLoanAmount = 100_000_000.0 // ₹10 crore

	MinTenureMonths = 60  // 5 years
	MaxTenureMonths = 360 // 30 years

	MaxMonthlyAddition = 200_000.0

	// Manual rate overrides must stay inside this band.
	MinRateOverride = 6.0
	MaxRateOverride = 15.0

	// Limits for the free EMI quote.
	MaxInterestRate = 100.0
	MinTermMonths   = 1
	MaxTermMonths   = 600

	// Borrower ages a personalized rate is offered for.
	MinBorrowerAge = 18
	MaxBorrowerAge = 75

	// Late payment calculator bounds.
	MinPenaltyEMI   = 5_000.0
	MaxPenaltyEMI   = 500_000.0
	MaxDaysLate     = 180
	DefaultDaysLate = 30

	// Surplus scenarios add a ₹50 lakh deposit only for loans above it.
	LargeSurplusScenario = 5_000_000.0

	DefaultTrialDuration = 15 * time.Minute
	DefaultMaxTrialRuns  = 3
	DefaultSessionTTL    = 24 * time.Hour

	DefaultHistoryLimit = 20
)

// TaxSlabs are the income tax slabs a borrower can pick, in percent.
var TaxSlabs = []float64{0, 5, 20, 30}

// SurplusScenarios are the initial offset deposits tried by SurplusImpact.
var SurplusScenarios = []float64{0, 200_000, 500_000, 1_000_000, 2_000_000}
