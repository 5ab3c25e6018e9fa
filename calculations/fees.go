package calculations

import (
	"math"

	"loan-compare/domain"
)

// GSTMultiplier adds the 18% goods and services tax to bank fees.
const GSTMultiplier = 1.18

// ProcessingFee is the bank's percentage fee, floored at its minimum, with
// GST on top.
func ProcessingFee(amount float64, fees domain.FeeSchedule) float64 {
	return math.Max(amount*fees.ProcessingFeePercent/100, fees.MinProcessingFee) * GSTMultiplier
}
