package domain

type LoanKind string

const (
	LoanKindRegular   LoanKind = "regular"
	LoanKindOverdraft LoanKind = "overdraft"
)

// ComparisonInput is everything a user picks before comparing a regular
// EMI loan with an overdraft-linked loan.
type ComparisonInput struct {
	Amount        float64          `json:"amount"`
	TenureMonths  int              `json:"tenure_months"`
	Tax           TaxProfile       `json:"tax"`
	Prepayment    PrepaymentPolicy `json:"prepayment"`
	Overdraft     OverdraftPolicy  `json:"overdraft"`
	RegularBank   BankID           `json:"regular_bank"`
	OverdraftBank BankID           `json:"overdraft_bank"`

	// Manual overrides win over personalized and base rates.
	RegularRateOverride   *float64     `json:"regular_rate_override,omitempty"`
	OverdraftRateOverride *float64     `json:"overdraft_rate_override,omitempty"`
	Profile               *UserProfile `json:"profile,omitempty"`
}

type YearComparison struct {
	Year              int     `json:"year"`
	RegularInterest   float64 `json:"regular_interest"`
	OverdraftInterest float64 `json:"overdraft_interest"`
	InterestSaved     float64 `json:"interest_saved"`
}

type ComparisonResult struct {
	ID                string              `json:"id,omitempty"`
	Input             ComparisonInput     `json:"input"`
	Regular           RegularLoanResult   `json:"regular"`
	Overdraft         OverdraftLoanResult `json:"overdraft"`
	NetSavings        float64             `json:"net_savings"`
	SavingsPercent    float64             `json:"savings_percent"`
	Cheaper           LoanKind            `json:"cheaper"`
	OverdraftEligible bool                `json:"overdraft_eligible"`
	YearlyComparison  []YearComparison    `json:"yearly_comparison"`
	Advice            string              `json:"advice,omitempty"`
}

type RegularBankRow struct {
	Bank          BankID  `json:"bank"`
	InterestRate  float64 `json:"interest_rate"`
	ProcessingFee float64 `json:"processing_fee_percent"`
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"total_interest"`
	TaxBenefit    float64 `json:"tax_benefit"`
	NetCost       float64 `json:"net_cost"`
}

type OverdraftBankRow struct {
	Bank          BankID  `json:"bank"`
	InterestRate  float64 `json:"interest_rate"`
	MinLoan       float64 `json:"min_loan"`
	ODCharge      float64 `json:"od_charge"`
	TotalInterest float64 `json:"total_interest"`
	InterestSaved float64 `json:"interest_saved"`
	NetCost       float64 `json:"net_cost"`
	Eligible      bool    `json:"eligible"`
}

type BankComparison struct {
	Regular   []RegularBankRow   `json:"regular"`
	Overdraft []OverdraftBankRow `json:"overdraft"`
}

type SurplusScenario struct {
	InitialDeposit    float64 `json:"initial_deposit"`
	NetCost           float64 `json:"net_cost"`
	SavingsVsRegular  float64 `json:"savings_vs_regular"`
	TotalInterestPaid float64 `json:"total_interest_paid"`
}

type SurplusImpact struct {
	RegularNetCost float64           `json:"regular_net_cost"`
	Scenarios      []SurplusScenario `json:"scenarios"`
}
