package service

import (
	"errors"
	"fmt"
	"slices"

	"loan-compare/domain"
	"loan-compare/format"
)

func validateComparison(in domain.ComparisonInput) error {
	return invalidInput(checkComparison(in))
}

func validateLoan(in domain.LoanInput) error {
	return invalidInput(checkLoan(in))
}

func validateProfile(p *domain.UserProfile) error {
	if p == nil {
		return nil
	}
	if p.Age != nil && (*p.Age < MinBorrowerAge || *p.Age > MaxBorrowerAge) {
		return invalidInput(fmt.Errorf("age must be between %d and %d", MinBorrowerAge, MaxBorrowerAge))
	}
	if p.LoanAmount != nil && *p.LoanAmount <= 0 {
		return invalidInput(errors.New("profile loan amount must be positive"))
	}
	return nil
}

func validatePenalty(emi float64, daysLate int) error {
	if emi < MinPenaltyEMI || emi > MaxPenaltyEMI {
		return invalidInput(fmt.Errorf("EMI must be between %.0f and %.0f", MinPenaltyEMI, MaxPenaltyEMI))
	}
	if daysLate < 1 || daysLate > MaxDaysLate {
		return invalidInput(fmt.Errorf("days late must be between 1 and %d", MaxDaysLate))
	}
	return nil
}

func checkLoan(in domain.LoanInput) error {
	if in.Amount <= 0 {
		return errors.New("invalid loan amount")
	}
	if in.Amount > MaxLoanAmount {
		return fmt.Errorf("loan amount exceeds the maximum of %.0f", MaxLoanAmount)
	}
	if in.InterestRate < 0 {
		return errors.New("invalid interest rate")
	}
	if in.InterestRate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if in.TermMonths < MinTermMonths {
		return errors.New("invalid term")
	}
	if in.TermMonths > MaxTermMonths {
		return fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

func checkComparison(in domain.ComparisonInput) error {
	if in.Amount <= 0 {
		return errors.New("loan amount must be positive")
	}
	if in.Amount < MinLoanAmount {
		return fmt.Errorf("loan amount must be at least %s", format.Indian(MinLoanAmount, 0))
	}
	if in.Amount > MaxLoanAmount {
		return fmt.Errorf("loan amount exceeds the maximum of %s", format.Indian(MaxLoanAmount, 0))
	}
	if in.TenureMonths < MinTenureMonths || in.TenureMonths > MaxTenureMonths {
		return fmt.Errorf("tenure must be between %d and %d months", MinTenureMonths, MaxTenureMonths)
	}
	if in.TenureMonths%12 != 0 {
		return errors.New("tenure must be a whole number of years")
	}

	if err := validateTax(in.Tax); err != nil {
		return err
	}

	if in.Prepayment.AnnualAmount < 0 {
		return errors.New("annual prepayment cannot be negative")
	}
	if in.Prepayment.AnnualAmount > in.Amount {
		return errors.New("annual prepayment cannot exceed the loan amount")
	}
	if in.Prepayment.Month < 0 || in.Prepayment.Month > 12 {
		return errors.New("prepayment month must be between 1 and 12")
	}

	if in.Overdraft.InitialDeposit < 0 {
		return errors.New("initial surplus cannot be negative")
	}
	if in.Overdraft.InitialDeposit > in.Amount {
		return errors.New("initial surplus cannot exceed the loan amount")
	}
	if in.Overdraft.MonthlyAddition < 0 || in.Overdraft.MonthlyAddition > MaxMonthlyAddition {
		return fmt.Errorf("monthly surplus must be between 0 and %s", format.Indian(MaxMonthlyAddition, 0))
	}

	if in.RegularBank == "" || in.OverdraftBank == "" {
		return errors.New("both a regular and an overdraft bank must be selected")
	}
	if err := validateOverride("regular", in.RegularRateOverride); err != nil {
		return err
	}
	if err := validateOverride("overdraft", in.OverdraftRateOverride); err != nil {
		return err
	}
	return validateProfile(in.Profile)
}

func validateTax(tax domain.TaxProfile) error {
	if !slices.Contains(TaxSlabs, tax.SlabPercent) {
		return fmt.Errorf("tax slab must be one of %v", TaxSlabs)
	}
	switch tax.Regime {
	case "", domain.TaxRegimeOld, domain.TaxRegimeNew:
	default:
		return fmt.Errorf("unknown tax regime %q", tax.Regime)
	}
	switch tax.Property {
	case "", domain.PropertySelfOccupied, domain.PropertyLetOut:
	default:
		return fmt.Errorf("unknown property type %q", tax.Property)
	}
	return nil
}

func validateOverride(kind string, rate *float64) error {
	if rate == nil {
		return nil
	}
	if *rate < MinRateOverride || *rate > MaxRateOverride {
		return fmt.Errorf("%s rate override must be between %.1f%% and %.1f%%", kind, MinRateOverride, MaxRateOverride)
	}
	return nil
}
