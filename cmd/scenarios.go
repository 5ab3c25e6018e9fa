package cmd

import (
	"github.com/spf13/cobra"

	"loan-compare/report"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Price the same loan at every bank",
	Long: `Run the loan against every regular and overdraft bank in the rate
table, cheapest first. Manual rate overrides are ignored.

Example:
  loancmp banks --amount 7500000 --years 25 --personalized --employment Salaried-MNC`,
	Args: cobra.NoArgs,
	RunE: runBanks,
}

var surplusCmd = &cobra.Command{
	Use:   "surplus",
	Short: "Show how the initial overdraft deposit changes the cost",
	Long: `Rerun the overdraft loan with initial deposits of 0, 2 L, 5 L, 10 L and
20 L (plus 50 L for loans above that), keeping those no larger than the loan.

Example:
  loancmp surplus --amount 5000000 --od-bank "SBI MaxGain"`,
	Args: cobra.NoArgs,
	RunE: runSurplus,
}

var (
	banksFlags   comparisonFlags
	surplusFlags comparisonFlags
)

func init() {
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(surplusCmd)
	addComparisonFlags(banksCmd, &banksFlags)
	addComparisonFlags(surplusCmd, &surplusFlags)
}

func runBanks(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		result, err := a.scenarios.CompareBanks(banksFlags.input())
		if err != nil {
			return err
		}
		return report.WriteBankRows(cmd.OutOrStdout(), result)
	})
}

func runSurplus(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		result, err := a.scenarios.SurplusImpact(surplusFlags.input())
		if err != nil {
			return err
		}
		return report.WriteSurplus(cmd.OutOrStdout(), result)
	})
}
