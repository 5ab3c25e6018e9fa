// Package calculations holds the pure loan arithmetic: the EMI formula, the
// regular and overdraft loan simulators, tax-benefit rules and the
// personalized rate adjustment. Nothing here does I/O or validation; callers
// guarantee a tenure of at least one month.
package calculations

import "math"

// EMI returns the fixed monthly instalment that repays principal over
// months equal payments at annualRate percent a year.
func EMI(principal, annualRate float64, months int) float64 {
	monthlyRate := annualRate / (12 * 100)
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1)
}

func monthlyRate(annualRate float64) float64 {
	return annualRate / (12 * 100)
}
