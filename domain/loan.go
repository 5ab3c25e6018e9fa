package domain

// LoanInput is the minimal EMI quote request.
type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type PropertyType string

const (
	PropertySelfOccupied PropertyType = "self-occupied"
	PropertyLetOut       PropertyType = "let-out"
)

type TaxRegime string

const (
	TaxRegimeOld TaxRegime = "old"
	TaxRegimeNew TaxRegime = "new"
)

// TaxProfile describes how a borrower's home-loan deductions are treated.
type TaxProfile struct {
	SlabPercent float64      `json:"slab_percent" yaml:"slab_percent"`
	Regime      TaxRegime    `json:"regime" yaml:"regime"`
	Property    PropertyType `json:"property" yaml:"property"`
}

func (t TaxProfile) OldRegime() bool {
	return t.Regime != TaxRegimeNew
}

func (t TaxProfile) SelfOccupied() bool {
	return t.Property != PropertyLetOut
}

// PrepaymentPolicy is a lump sum paid once a year in the given calendar
// month. A zero amount disables prepayment.
type PrepaymentPolicy struct {
	AnnualAmount float64 `json:"annual_amount" yaml:"annual_amount"`
	Month        int     `json:"month" yaml:"month"`
}

// OverdraftPolicy describes the money parked in the linked offset account.
type OverdraftPolicy struct {
	InitialDeposit  float64 `json:"initial_deposit" yaml:"initial_deposit"`
	MonthlyAddition float64 `json:"monthly_addition" yaml:"monthly_addition"`
}

// FeeSchedule is the bank's processing fee rule.
type FeeSchedule struct {
	ProcessingFeePercent float64 `json:"processing_fee_percent"`
	MinProcessingFee     float64 `json:"min_processing_fee"`
}

type RegularLoanInput struct {
	Principal    float64
	AnnualRate   float64
	TenureMonths int
	Tax          TaxProfile
	Prepayment   PrepaymentPolicy
	Fees         FeeSchedule
}

type OverdraftLoanInput struct {
	Principal     float64
	AnnualRate    float64
	TenureMonths  int
	Tax           TaxProfile
	Overdraft     OverdraftPolicy
	Fees          FeeSchedule
	AccountCharge float64
}
