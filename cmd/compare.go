package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"loan-compare/domain"
	"loan-compare/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a regular loan with an overdraft loan",
	Long: `Run both loans for the same borrower and show which one costs less
after processing fees, account charges and tax benefits.

Examples:
  loancmp compare --amount 5000000 --years 20 --deposit 500000 --monthly 20000
  loancmp compare --regular-bank SBI --od-bank "SBI MaxGain" --yearly
  loancmp compare --pdf comparison.pdf --chart interest.html`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

var (
	compareFlags  comparisonFlags
	compareYearly bool
	compareJSON   bool
	comparePDF    string
	compareChart  string
)

func init() {
	rootCmd.AddCommand(compareCmd)
	addComparisonFlags(compareCmd, &compareFlags)
	compareCmd.Flags().BoolVar(&compareYearly, "yearly", false, "also print the year-wise interest comparison")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "print the full result as JSON")
	compareCmd.Flags().StringVar(&comparePDF, "pdf", "", "write a PDF report to this path")
	compareCmd.Flags().StringVar(&compareChart, "chart", "", "write an HTML yearly interest chart to this path")
}

func runCompare(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		result, err := a.loans.Compare(cmd.Context(), compareFlags.input())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if compareJSON {
			if err := printJSON(cmd, result); err != nil {
				return err
			}
		} else {
			if err := report.WriteComparison(out, result); err != nil {
				return err
			}
			if compareYearly {
				fmt.Fprintln(out)
				if err := report.WriteYearly(out, result.YearlyComparison); err != nil {
					return err
				}
			}
		}

		if comparePDF != "" {
			pdf, err := report.ComparisonPDF(result, time.Now())
			if err != nil {
				return err
			}
			if err := os.WriteFile(comparePDF, pdf, 0o644); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", comparePDF)
		}

		if compareChart != "" {
			if err := writeChart(compareChart, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", compareChart)
		}
		return nil
	})
}

func writeChart(path string, result domain.ComparisonResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart: %w", cerr)
		}
	}()

	if err := report.YearlyInterestChart(f, result); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
