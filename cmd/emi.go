package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-compare/domain"
	"loan-compare/format"
	"loan-compare/report"
)

var emiCmd = &cobra.Command{
	Use:   "emi",
	Short: "Quote the monthly instalment for a loan",
	Long: `Print the EMI, total payment and total interest, with no fees or tax.

Example:
  loancmp emi --amount 5000000 --rate 8.5 --months 240`,
	Args: cobra.NoArgs,
	RunE: runEMI,
}

var penaltyCmd = &cobra.Command{
	Use:   "penalty",
	Short: "Estimate the charges for a late EMI",
	Long: `Estimate penal interest, late fee, bounce charge and legal notice
charge for paying one EMI late.

Example:
  loancmp penalty --emi 45000 --days 45`,
	Args: cobra.NoArgs,
	RunE: runPenalty,
}

var (
	emiAmount   float64
	emiRate     float64
	emiMonths   int
	penaltyEMI  float64
	penaltyDays int
)

func init() {
	rootCmd.AddCommand(emiCmd)
	rootCmd.AddCommand(penaltyCmd)

	emiCmd.Flags().Float64Var(&emiAmount, "amount", 5_000_000, "loan amount in rupees")
	emiCmd.Flags().Float64Var(&emiRate, "rate", 8.5, "annual interest rate in percent")
	emiCmd.Flags().IntVar(&emiMonths, "months", 240, "term in months")

	penaltyCmd.Flags().Float64Var(&penaltyEMI, "emi", 45_000, "monthly instalment in rupees")
	penaltyCmd.Flags().IntVar(&penaltyDays, "days", 30, "days the payment is late")
}

func runEMI(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		result, err := a.loans.CalculateLoan(domain.LoanInput{
			Amount:       emiAmount,
			InterestRate: emiRate,
			TermMonths:   emiMonths,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "EMI:            %s\n", format.Indian(result.MonthlyPayment, 2))
		fmt.Fprintf(out, "Total payment:  %s\n", format.WithApproximation(result.TotalPayment, 0))
		fmt.Fprintf(out, "Total interest: %s\n", format.WithApproximation(result.TotalInterest, 0))
		return nil
	})
}

func runPenalty(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		result, err := a.loans.LatePaymentPenalty(penaltyEMI, penaltyDays)
		if err != nil {
			return err
		}
		return report.WritePenalty(cmd.OutOrStdout(), result)
	})
}
