package calculations

import (
	"math"

	"loan-compare/domain"
)

// SimulateOverdraftLoan runs a loan whose linked offset balance is netted
// off the outstanding before interest is charged. The EMI is fixed from
// the full principal and never recalculated, so a well-funded offset
// account closes the loan early. The last instalment is not trimmed and
// may overshoot the remaining balance.
func SimulateOverdraftLoan(in domain.OverdraftLoanInput) domain.OverdraftLoanResult {
	rate := monthlyRate(in.AnnualRate)
	emi := EMI(in.Principal, in.AnnualRate, in.TenureMonths)

	outstanding := in.Principal
	offset := in.Overdraft.InitialDeposit

	var (
		ledger         domain.YearlyLedger
		schedule       []domain.ScheduleEntry
		totalInterest  float64
		totalPrincipal float64
		month          int
	)

	for month < in.TenureMonths {
		month++

		effective := math.Max(0, outstanding-offset)
		interest := effective * rate
		principal := emi - interest

		outstanding -= principal
		totalInterest += interest
		totalPrincipal += principal

		offset += in.Overdraft.MonthlyAddition
		offset = math.Min(offset, math.Max(0, outstanding))

		ledger.Record(month, principal, interest)
		schedule = append(schedule, domain.ScheduleEntry{
			Month:                month,
			Payment:              emi,
			Interest:             interest,
			Principal:            principal,
			Outstanding:          outstanding,
			OffsetBalance:        offset,
			EffectiveOutstanding: effective,
		})

		if outstanding <= 0 {
			break
		}
	}

	fee := ProcessingFee(in.Principal, in.Fees)
	benefit := OverdraftTaxBenefit(ledger, in.Tax)

	// Interest a plain loan paying this EMI for the full tenure would cost.
	plainInterest := emi*float64(in.TenureMonths) - in.Principal

	return domain.OverdraftLoanResult{
		InterestRate:       in.AnnualRate,
		EMI:                emi,
		TotalInterest:      totalInterest,
		TotalPrincipal:     totalPrincipal,
		InterestSaved:      plainInterest - totalInterest,
		ProcessingFee:      fee,
		AccountCharge:      in.AccountCharge,
		TaxBenefit:         benefit,
		NetCost:            totalInterest + fee + in.AccountCharge - benefit.Total(),
		MonthsToClose:      month,
		FinalOffsetBalance: offset,
		Ledger:             ledger,
		Schedule:           schedule,
	}
}
