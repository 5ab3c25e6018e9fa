package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
		want      float64
		tolerance float64
	}{
		{name: "5M at 8.50% over 20 years", principal: 5_000_000, rate: 8.50, months: 240, want: 43_391, tolerance: 1},
		{name: "5M at 8.60% over 20 years", principal: 5_000_000, rate: 8.60, months: 240, want: 43_708, tolerance: 1},
		{name: "100k at 12% over 1 year", principal: 100_000, rate: 12, months: 12, want: 8_884.88, tolerance: 0.01},
		{name: "zero rate splits evenly", principal: 1_200, rate: 0, months: 12, want: 100, tolerance: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EMI(tt.principal, tt.rate, tt.months), tt.tolerance)
		})
	}
}

func TestEMITotalRepayment(t *testing.T) {
	for _, months := range []int{1, 12, 60, 240, 360} {
		assert.InDelta(t, 2_500_000, EMI(2_500_000, 0, months)*float64(months), 1e-6,
			"zero rate must repay exactly the principal over %d months", months)
		assert.Greater(t, EMI(2_500_000, 8.75, months)*float64(months), 2_500_000.0,
			"positive rate must repay more than the principal over %d months", months)
	}
}

func TestProcessingFee(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		fees   feeCase
		want   float64
	}{
		{name: "percentage above minimum", amount: 5_000_000, fees: feeCase{0.50, 3000}, want: 29_500},
		{name: "minimum applies", amount: 400_000, fees: feeCase{0.50, 3000}, want: 3_540},
		{name: "no fee", amount: 5_000_000, fees: feeCase{0, 0}, want: 0},
		{name: "percentage equals minimum", amount: 1_000_000, fees: feeCase{1.00, 10_000}, want: 11_800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProcessingFee(tt.amount, tt.fees.schedule()), 1e-6)
		})
	}
}
