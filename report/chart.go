package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"loan-compare/domain"
)

// YearlyInterestChart writes an HTML page with the interest each loan
// charges per year.
func YearlyInterestChart(w io.Writer, result domain.ComparisonResult) error {
	years := make([]string, 0, len(result.YearlyComparison))
	regular := make([]opts.LineData, 0, len(result.YearlyComparison))
	overdraft := make([]opts.LineData, 0, len(result.YearlyComparison))
	for _, y := range result.YearlyComparison {
		years = append(years, fmt.Sprintf("Year %d", y.Year))
		regular = append(regular, opts.LineData{Value: roundRupee(y.RegularInterest)})
		overdraft = append(overdraft, opts.LineData{Value: roundRupee(y.OverdraftInterest)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Yearly interest"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Interest paid per year",
			Subtitle: fmt.Sprintf("%s vs %s", result.Input.RegularBank, result.Input.OverdraftBank),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Interest (₹)"}),
	)
	line.SetXAxis(years).
		AddSeries("Regular loan", regular).
		AddSeries("Overdraft loan", overdraft)

	return line.Render(w)
}

// CostComponentsChart writes an HTML bar chart splitting each loan's net
// cost into principal, interest, fees and tax benefit.
func CostComponentsChart(w io.Writer, result domain.ComparisonResult) error {
	reg, od := result.Regular, result.Overdraft
	components := []string{"Principal", "Interest", "Fees", "Tax benefit", "Net cost"}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cost breakdown"}),
		charts.WithTitleOpts(opts.Title{Title: "Where the money goes"}),
	)
	bar.SetXAxis(components).
		AddSeries("Regular loan", []opts.BarData{
			{Value: roundRupee(result.Input.Amount)},
			{Value: roundRupee(reg.TotalInterest)},
			{Value: roundRupee(reg.ProcessingFee)},
			{Value: roundRupee(-reg.TaxBenefit.Total())},
			{Value: roundRupee(reg.NetCost)},
		}).
		AddSeries("Overdraft loan", []opts.BarData{
			{Value: roundRupee(result.Input.Amount)},
			{Value: roundRupee(od.TotalInterest)},
			{Value: roundRupee(od.ProcessingFee + od.AccountCharge)},
			{Value: roundRupee(-od.TaxBenefit.Total())},
			{Value: roundRupee(od.NetCost)},
		})

	return bar.Render(w)
}

func roundRupee(v float64) int64 {
	if v < 0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}
