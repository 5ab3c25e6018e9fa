package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loan-compare/domain"
)

func newTestScenarioService(t *testing.T) *ScenarioService {
	t.Helper()
	loans, _ := newTestLoanService(t)
	return NewScenarioService(loans, zap.NewNop())
}

func TestCompareBanks(t *testing.T) {
	svc := newTestScenarioService(t)

	got, err := svc.CompareBanks(referenceInput())
	require.NoError(t, err)

	require.Len(t, got.Regular, 6)
	require.Len(t, got.Overdraft, 4)

	for i := 1; i < len(got.Regular); i++ {
		assert.LessOrEqual(t, got.Regular[i-1].NetCost, got.Regular[i].NetCost)
	}
	for i := 1; i < len(got.Overdraft); i++ {
		assert.LessOrEqual(t, got.Overdraft[i-1].NetCost, got.Overdraft[i].NetCost)
	}

	byBank := map[domain.BankID]domain.RegularBankRow{}
	for _, row := range got.Regular {
		byBank[row.Bank] = row
	}
	assert.Equal(t, 8.50, byBank["SBI"].InterestRate)
	assert.Zero(t, byBank["SBI"].ProcessingFee)
	assert.InDelta(t, 43_391, byBank["SBI"].EMI, 1)

	for _, row := range got.Overdraft {
		assert.True(t, row.Eligible, "%s accepts a ₹50 lakh loan", row.Bank)
	}
}

func TestCompareBanks_EligibilityFollowsMinimumLoan(t *testing.T) {
	svc := newTestScenarioService(t)

	in := referenceInput()
	in.Amount = 2_200_000
	in.Overdraft.InitialDeposit = 0

	got, err := svc.CompareBanks(in)
	require.NoError(t, err)

	for _, row := range got.Overdraft {
		assert.Equal(t, in.Amount >= row.MinLoan, row.Eligible, string(row.Bank))
	}
}

func TestSurplusImpact(t *testing.T) {
	svc := newTestScenarioService(t)

	got, err := svc.SurplusImpact(referenceInput())
	require.NoError(t, err)

	deposits := make([]float64, 0, len(got.Scenarios))
	for _, s := range got.Scenarios {
		deposits = append(deposits, s.InitialDeposit)
	}
	assert.Equal(t, []float64{0, 200_000, 500_000, 1_000_000, 2_000_000}, deposits)

	for i, s := range got.Scenarios {
		assert.InDelta(t, got.RegularNetCost-s.NetCost, s.SavingsVsRegular, 1e-6)
		if i > 0 {
			prev := got.Scenarios[i-1]
			assert.Less(t, s.TotalInterestPaid, prev.TotalInterestPaid)
			assert.GreaterOrEqual(t, s.SavingsVsRegular, prev.SavingsVsRegular)
		}
	}
}

func TestSurplusScenarios(t *testing.T) {
	assert.Equal(t, []float64{0, 200_000, 500_000, 1_000_000, 2_000_000}, surplusScenarios(5_000_000))
	assert.Equal(t, []float64{0, 200_000, 500_000, 1_000_000, 2_000_000, 5_000_000}, surplusScenarios(6_000_000))
	assert.Equal(t, []float64{0, 200_000, 500_000}, surplusScenarios(800_000))
}

func TestScenarioValidation(t *testing.T) {
	svc := newTestScenarioService(t)

	in := referenceInput()
	in.TenureMonths = 30

	_, err := svc.CompareBanks(in)
	assert.Error(t, err)
	_, err = svc.SurplusImpact(in)
	assert.Error(t, err)
}
