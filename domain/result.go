package domain

// TaxBenefit splits the tax saved over the loan into the principal
// deduction (80C) and the interest deduction (24b).
type TaxBenefit struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

func (t TaxBenefit) Total() float64 {
	return t.Principal + t.Interest
}

// ScheduleEntry is one simulated month.
type ScheduleEntry struct {
	Month                int     `json:"month"`
	Payment              float64 `json:"payment"`
	Interest             float64 `json:"interest"`
	Principal            float64 `json:"principal"`
	Prepayment           float64 `json:"prepayment,omitempty"`
	Outstanding          float64 `json:"outstanding"`
	OffsetBalance        float64 `json:"offset_balance,omitempty"`
	EffectiveOutstanding float64 `json:"effective_outstanding,omitempty"`
}

type RegularLoanResult struct {
	InterestRate   float64         `json:"interest_rate"`
	EMI            float64         `json:"emi"`
	FinalEMI       float64         `json:"final_emi"`
	TotalPayment   float64         `json:"total_payment"`
	TotalInterest  float64         `json:"total_interest"`
	TotalPrincipal float64         `json:"total_principal"`
	TotalPrepaid   float64         `json:"total_prepaid"`
	ProcessingFee  float64         `json:"processing_fee"`
	TaxBenefit     TaxBenefit      `json:"tax_benefit"`
	NetCost        float64         `json:"net_cost"`
	MonthsToClose  int             `json:"months_to_close"`
	Ledger         YearlyLedger    `json:"ledger"`
	Schedule       []ScheduleEntry `json:"schedule,omitempty"`
}

type OverdraftLoanResult struct {
	InterestRate       float64         `json:"interest_rate"`
	EMI                float64         `json:"emi"`
	TotalInterest      float64         `json:"total_interest"`
	TotalPrincipal     float64         `json:"total_principal"`
	InterestSaved      float64         `json:"interest_saved"`
	ProcessingFee      float64         `json:"processing_fee"`
	AccountCharge      float64         `json:"account_charge"`
	TaxBenefit         TaxBenefit      `json:"tax_benefit"`
	NetCost            float64         `json:"net_cost"`
	MonthsToClose      int             `json:"months_to_close"`
	FinalOffsetBalance float64         `json:"final_offset_balance"`
	Ledger             YearlyLedger    `json:"ledger"`
	Schedule           []ScheduleEntry `json:"schedule,omitempty"`
}
