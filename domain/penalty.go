package domain

// LatePaymentPenalty breaks down the cost of paying one EMI late.
type LatePaymentPenalty struct {
	EMI               float64 `json:"emi"`
	DaysLate          int     `json:"days_late"`
	PenalInterest     float64 `json:"penal_interest"`
	LatePaymentFee    float64 `json:"late_payment_fee"`
	BounceCharge      float64 `json:"bounce_charge"`
	LegalNoticeCharge float64 `json:"legal_notice_charge"`
	Total             float64 `json:"total"`
	PercentOfEMI      float64 `json:"percent_of_emi"`
}
