package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"loan-compare/domain"
	"loan-compare/report"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the bank rate table and how current it is",
	Long: `Print every bank's base rate, fees and overdraft terms, and how long
ago the table was updated. The table comes from rates.file, or the built-in
table when none is configured.

Example:
  loancmp rates --config loancmp.yaml`,
	Args: cobra.NoArgs,
	RunE: runRates,
}

var personalizeCmd = &cobra.Command{
	Use:   "personalize <bank>",
	Short: "Show how a borrower profile moves a bank's rate",
	Long: `Apply the credit score, age, gender, employment, loan amount and
location adjustments to one bank's base rate.

Example:
  loancmp personalize "HDFC Bank" --credit-score 750+ --age 30 --employment Salaried-Govt --loan 8000000`,
	Args: cobra.ExactArgs(1),
	RunE: runPersonalize,
}

var (
	personalizeProfile profileFlags
	personalizeLoan    float64
)

func init() {
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(personalizeCmd)

	addProfileFlags(personalizeCmd, &personalizeProfile)
	personalizeCmd.Flags().Float64Var(&personalizeLoan, "loan", *domain.DefaultUserProfile().LoanAmount, "loan amount in rupees")
}

func runRates(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		table, err := a.rates.Table(nil)
		if err != nil {
			return err
		}
		return report.WriteRates(cmd.OutOrStdout(), table, table.Status(time.Now()))
	})
}

func runPersonalize(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		profile := personalizeProfile.profile()
		profile.LoanAmount = domain.Ptr(personalizeLoan)

		result, err := a.rates.Personalize(domain.BankID(args[0]), profile)
		if err != nil {
			return err
		}
		return report.WritePersonalized(cmd.OutOrStdout(), result)
	})
}
