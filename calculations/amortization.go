package calculations

import (
	"math"

	"loan-compare/domain"
)

// ClosedEpsilon is the outstanding balance below which a loan counts as
// fully repaid; it absorbs floating point residue.
const ClosedEpsilon = 0.01

// DefaultPrepaymentMonth is December.
const DefaultPrepaymentMonth = 12

// SimulateRegularLoan steps an EMI loan month by month until it is repaid
// or the tenure runs out.
//
// When a prepayment is made the EMI is recomputed over the remaining
// tenure, so later instalments shrink while the end date stays put.
func SimulateRegularLoan(in domain.RegularLoanInput) domain.RegularLoanResult {
	rate := monthlyRate(in.AnnualRate)
	prepayMonth := in.Prepayment.Month
	if prepayMonth == 0 {
		prepayMonth = DefaultPrepaymentMonth
	}

	baseEMI := EMI(in.Principal, in.AnnualRate, in.TenureMonths)
	currentEMI := baseEMI
	outstanding := in.Principal

	var (
		ledger         domain.YearlyLedger
		schedule       []domain.ScheduleEntry
		totalInterest  float64
		totalPrincipal float64
		totalPrepaid   float64
		month          int
	)

	for outstanding > ClosedEpsilon && month < in.TenureMonths {
		month++
		monthInYear := (month-1)%12 + 1

		interest := outstanding * rate
		principal := math.Min(currentEMI-interest, outstanding)

		outstanding -= principal
		totalInterest += interest
		totalPrincipal += principal
		ledger.Record(month, principal, interest)

		entry := domain.ScheduleEntry{
			Month:     month,
			Payment:   principal + interest,
			Interest:  interest,
			Principal: principal,
		}

		if monthInYear == prepayMonth && in.Prepayment.AnnualAmount > 0 && outstanding > ClosedEpsilon {
			prepaid := math.Min(in.Prepayment.AnnualAmount, outstanding)
			outstanding -= prepaid
			totalPrepaid += prepaid
			ledger.AddPrincipal(month, prepaid)
			entry.Prepayment = prepaid

			if outstanding > ClosedEpsilon {
				if remaining := in.TenureMonths - month; remaining > 0 {
					currentEMI = EMI(outstanding, in.AnnualRate, remaining)
				}
			}
		}

		entry.Outstanding = outstanding
		schedule = append(schedule, entry)
	}

	fee := ProcessingFee(in.Principal, in.Fees)
	benefit := RegularTaxBenefit(ledger, in.Tax)

	return domain.RegularLoanResult{
		InterestRate:   in.AnnualRate,
		EMI:            baseEMI,
		FinalEMI:       currentEMI,
		TotalPayment:   totalPrincipal + totalInterest,
		TotalInterest:  totalInterest,
		TotalPrincipal: totalPrincipal,
		TotalPrepaid:   totalPrepaid,
		ProcessingFee:  fee,
		TaxBenefit:     benefit,
		NetCost:        totalInterest + fee - benefit.Total(),
		MonthsToClose:  month,
		Ledger:         ledger,
		Schedule:       schedule,
	}
}
