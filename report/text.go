package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"loan-compare/domain"
	"loan-compare/format"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// WriteComparison prints the side by side summary and the verdict.
func WriteComparison(w io.Writer, r domain.ComparisonResult) error {
	reg, od := r.Regular, r.Overdraft

	tw := newTable(w)
	fmt.Fprintf(tw, "\t%s\t%s\t\n", r.Input.RegularBank, r.Input.OverdraftBank)
	fmt.Fprintf(tw, "Rate\t%.2f%%\t%.2f%%\t\n", reg.InterestRate, od.InterestRate)
	fmt.Fprintf(tw, "EMI\t%s\t%s\t\n", format.Indian(reg.EMI, 0), format.Indian(od.EMI, 0))
	fmt.Fprintf(tw, "Total interest\t%s\t%s\t\n", format.Indian(reg.TotalInterest, 0), format.Indian(od.TotalInterest, 0))
	fmt.Fprintf(tw, "Processing fee\t%s\t%s\t\n", format.Indian(reg.ProcessingFee, 0), format.Indian(od.ProcessingFee, 0))
	fmt.Fprintf(tw, "Account charge\t-\t%s\t\n", format.Indian(od.AccountCharge, 0))
	fmt.Fprintf(tw, "Tax benefit\t%s\t%s\t\n", format.Indian(reg.TaxBenefit.Total(), 0), format.Indian(od.TaxBenefit.Total(), 0))
	fmt.Fprintf(tw, "Net cost\t%s\t%s\t\n", format.Indian(reg.NetCost, 0), format.Indian(od.NetCost, 0))
	fmt.Fprintf(tw, "Months to close\t%d\t%d\t\n", reg.MonthsToClose, od.MonthsToClose)
	if err := tw.Flush(); err != nil {
		return err
	}

	var verdict string
	if r.Cheaper == domain.LoanKindOverdraft {
		verdict = fmt.Sprintf("\nOverdraft saves %s (%.1f%%)\n", format.WithApproximation(r.NetSavings, 0), r.SavingsPercent)
	} else {
		verdict = fmt.Sprintf("\nRegular loan is cheaper by %s\n", format.WithApproximation(-r.NetSavings, 0))
	}
	if _, err := io.WriteString(w, verdict); err != nil {
		return err
	}
	if !r.OverdraftEligible {
		if _, err := io.WriteString(w, "Warning: loan amount is below the overdraft minimum\n"); err != nil {
			return err
		}
	}
	if r.Advice != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", r.Advice); err != nil {
			return err
		}
	}
	return nil
}

// WriteYearly prints the year-wise interest comparison.
func WriteYearly(w io.Writer, years []domain.YearComparison) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Year\tRegular\tOverdraft\tSaved\t")
	for _, y := range years {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", y.Year,
			format.Indian(y.RegularInterest, 0), format.Indian(y.OverdraftInterest, 0), format.Indian(y.InterestSaved, 0))
	}
	return tw.Flush()
}

// WriteBankRows prints every bank's price for the same loan.
func WriteBankRows(w io.Writer, c domain.BankComparison) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Regular loan\tRate\tFee %\tEMI\tInterest\tTax benefit\tNet cost\t")
	for _, r := range c.Regular {
		fmt.Fprintf(tw, "%s\t%.2f%%\t%.2f%%\t%s\t%s\t%s\t%s\t\n", r.Bank, r.InterestRate, r.ProcessingFee,
			format.Indian(r.EMI, 0), format.Indian(r.TotalInterest, 0), format.Indian(r.TaxBenefit, 0), format.Indian(r.NetCost, 0))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tw = newTable(w)
	fmt.Fprintln(tw, "Overdraft loan\tRate\tMin loan\tOD charge\tInterest\tSaved\tNet cost\tEligible\t")
	for _, r := range c.Overdraft {
		eligible := "yes"
		if !r.Eligible {
			eligible = "no"
		}
		fmt.Fprintf(tw, "%s\t%.2f%%\t%s\t%s\t%s\t%s\t%s\t%s\t\n", r.Bank, r.InterestRate,
			format.Compact(r.MinLoan), format.Indian(r.ODCharge, 0), format.Indian(r.TotalInterest, 0),
			format.Indian(r.InterestSaved, 0), format.Indian(r.NetCost, 0), eligible)
	}
	return tw.Flush()
}

// WriteSurplus prints the net cost at each initial deposit.
func WriteSurplus(w io.Writer, s domain.SurplusImpact) error {
	if _, err := fmt.Fprintf(w, "Regular loan net cost: %s\n\n", format.Indian(s.RegularNetCost, 0)); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Initial deposit\tInterest\tNet cost\tSavings vs regular\t")
	for _, sc := range s.Scenarios {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", format.Compact(sc.InitialDeposit),
			format.Indian(sc.TotalInterestPaid, 0), format.Indian(sc.NetCost, 0), format.Indian(sc.SavingsVsRegular, 0))
	}
	return tw.Flush()
}

// WriteRates prints the rate table with its freshness line.
func WriteRates(w io.Writer, t domain.RateTable, status domain.RateStatus) error {
	if _, err := fmt.Fprintf(w, "%s (last updated %s)\n\n", status.Message, t.LastUpdated); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Regular loan\tRate\tFee %\tMin fee\tPrepayment charge\t")
	for _, id := range t.RegularBanks() {
		r := t.Regular[id]
		fmt.Fprintf(tw, "%s\t%.2f%%\t%.2f%%\t%s\t%.2f%%\t\n", id, r.BaseRate, r.ProcessingFee,
			format.Indian(r.MinProcessing, 0), r.PrepaymentCharge)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tw = newTable(w)
	fmt.Fprintln(tw, "Overdraft loan\tRate\tFee %\tOD charge\tMin loan\t")
	for _, id := range t.OverdraftBanks() {
		r := t.Overdraft[id]
		fmt.Fprintf(tw, "%s\t%.2f%%\t%.2f%%\t%s\t%s\t\n", id, r.BaseRate, r.ProcessingFee,
			format.Indian(r.ODCharge, 0), format.Compact(r.MinLoan))
	}
	return tw.Flush()
}

// WritePersonalized prints the adjustments behind a personalized rate.
func WritePersonalized(w io.Writer, p domain.PersonalizedRate) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Base rate\t%.2f%%\t\n", p.BaseRate)
	for _, a := range p.Adjustments {
		fmt.Fprintf(tw, "%s\t%+.2f%%\t%s\n", a.Factor, a.Value, a.Description)
	}
	fmt.Fprintf(tw, "Total adjustment\t%+.2f%%\t\n", p.TotalAdjustment)
	fmt.Fprintf(tw, "Final rate\t%.2f%%\t\n", p.FinalRate)
	return tw.Flush()
}

// WritePenalty prints the late payment charges.
func WritePenalty(w io.Writer, p domain.LatePaymentPenalty) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "EMI\t%s\t\n", format.Indian(p.EMI, 0))
	fmt.Fprintf(tw, "Days late\t%d\t\n", p.DaysLate)
	fmt.Fprintf(tw, "Penal interest\t%s\t\n", format.Indian(p.PenalInterest, 0))
	fmt.Fprintf(tw, "Late payment fee\t%s\t\n", format.Indian(p.LatePaymentFee, 0))
	fmt.Fprintf(tw, "Bounce charge\t%s\t\n", format.Indian(p.BounceCharge, 0))
	fmt.Fprintf(tw, "Legal notice\t%s\t\n", format.Indian(p.LegalNoticeCharge, 0))
	fmt.Fprintf(tw, "Total\t%s\t\n", format.Indian(p.Total, 0))
	fmt.Fprintf(tw, "Share of EMI\t%.1f%%\t\n", p.PercentOfEMI)
	return tw.Flush()
}

// WriteHistory lists stored comparisons, newest first.
func WriteHistory(w io.Writer, records []domain.ComparisonRecord) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tWhen\tAmount\tYears\tRegular\tOverdraft\tSavings\tCheaper\t")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t\n", r.ID, r.CreatedAt.Local().Format(time.DateTime),
			format.Compact(r.Amount), r.TenureMonths/12, r.RegularBank, r.OverdraftBank,
			format.Indian(r.NetSavings, 0), r.Cheaper)
	}
	return tw.Flush()
}
