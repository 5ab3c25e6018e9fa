package calculations

import "loan-compare/domain"

// Typical charges banks levy on a missed EMI.
const (
	PenalInterestMonthlyPercent = 2.0
	LateFeeBase                 = 500.0
	LateFeePerDayAfterMonth     = 50.0
	BounceCharge                = 750.0
	BounceAfterDays             = 7
	LegalNoticeCharge           = 5000.0
	LegalNoticeAfterDays        = 90
)

// LatePaymentPenalty estimates what a single EMI paid daysLate days late
// ends up costing.
func LatePaymentPenalty(emi float64, daysLate int) domain.LatePaymentPenalty {
	p := domain.LatePaymentPenalty{
		EMI:            emi,
		DaysLate:       daysLate,
		PenalInterest:  emi * PenalInterestMonthlyPercent / 100 * float64(daysLate) / 30,
		LatePaymentFee: LateFeeBase,
	}
	if daysLate > 30 {
		p.LatePaymentFee += float64(daysLate-30) * LateFeePerDayAfterMonth
	}
	if daysLate > BounceAfterDays {
		p.BounceCharge = BounceCharge
	}
	if daysLate > LegalNoticeAfterDays {
		p.LegalNoticeCharge = LegalNoticeCharge
	}

	p.Total = p.PenalInterest + p.LatePaymentFee + p.BounceCharge + p.LegalNoticeCharge
	if emi > 0 {
		p.PercentOfEMI = p.Total / emi * 100
	}
	return p
}
