package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateOverdraftLoan_ReferenceScenario(t *testing.T) {
	res := SimulateOverdraftLoan(overdraftInput(5_000_000, 8.85, 240, 500_000, 20_000))

	assert.InDelta(t, 1_843_203, res.TotalInterest, 1)
	assert.Equal(t, 154, res.MonthsToClose)
	assert.Len(t, res.Ledger, ceilYears(154))
	assert.InDelta(t, 3_838_016, res.InterestSaved, 1)
	assert.Zero(t, res.TaxBenefit.Principal)
	assert.InDelta(t, 5000, res.AccountCharge, 1e-9)
	assert.InDelta(t,
		res.TotalInterest+res.ProcessingFee+res.AccountCharge-res.TaxBenefit.Total(),
		res.NetCost, 1e-6)
}

func TestSimulateOverdraftLoan_NoDepositsMatchesPlainLoan(t *testing.T) {
	res := SimulateOverdraftLoan(overdraftInput(5_000_000, 8.85, 240, 0, 0))

	assert.Equal(t, 240, res.MonthsToClose)
	assert.InDelta(t, 5_681_219, res.TotalInterest, 1)
	assert.InDelta(t, 0, res.InterestSaved, 1)
	assert.InDelta(t, 44_505.08, res.EMI, 0.01)
}

func TestSimulateOverdraftLoan_EffectiveOutstandingNeverNegative(t *testing.T) {
	deposits := []float64{0, 200_000, 1_000_000, 4_900_000, 5_000_000}
	additions := []float64{0, 5_000, 20_000, 200_000}

	for _, d := range deposits {
		for _, a := range additions {
			res := SimulateOverdraftLoan(overdraftInput(5_000_000, 8.85, 240, d, a))
			require.NotEmpty(t, res.Schedule)

			for _, e := range res.Schedule {
				assert.GreaterOrEqual(t, e.EffectiveOutstanding, 0.0,
					"deposit %.0f, addition %.0f, month %d", d, a, e.Month)
				assert.GreaterOrEqual(t, e.Interest, 0.0)
				assert.LessOrEqual(t, e.OffsetBalance, math.Max(0, e.Outstanding)+1e-9)
			}
			assert.Len(t, res.Ledger, ceilYears(res.MonthsToClose))
		}
	}
}

func TestSimulateOverdraftLoan_InterestFallsAsDepositGrows(t *testing.T) {
	deposits := []float64{0, 200_000, 500_000, 1_000_000, 2_000_000}

	prev := math.Inf(1)
	for _, d := range deposits {
		res := SimulateOverdraftLoan(overdraftInput(5_000_000, 8.85, 240, d, 20_000))
		assert.Less(t, res.TotalInterest, prev, "initial deposit %.0f", d)
		prev = res.TotalInterest
	}

	full := SimulateOverdraftLoan(overdraftInput(5_000_000, 8.85, 240, 5_000_000, 20_000))
	assert.Zero(t, full.TotalInterest, "a fully offset loan accrues no interest")
	assert.Equal(t, 113, full.MonthsToClose)
}

func TestSimulateOverdraftLoan_NoPrincipalTaxBenefit(t *testing.T) {
	for _, tax := range []struct {
		name string
		in   func() float64
	}{
		{"old self-occupied", func() float64 { return principalBenefit(oldSelfOccupied.Regime, oldSelfOccupied.Property) }},
		{"old let-out", func() float64 { return principalBenefit(oldLetOut.Regime, oldLetOut.Property) }},
		{"new self-occupied", func() float64 { return principalBenefit(newSelfOccupied.Regime, newSelfOccupied.Property) }},
		{"new let-out", func() float64 { return principalBenefit(newLetOut.Regime, newLetOut.Property) }},
	} {
		t.Run(tax.name, func(t *testing.T) {
			assert.Zero(t, tax.in())
		})
	}
}
