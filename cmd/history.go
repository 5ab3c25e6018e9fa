package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"loan-compare/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query saved comparisons",
	Long: `List or show comparisons saved by the API and the compare command.
History survives restarts only with storage.history_driver: sqlite.

Subcommands:
  list - List recent comparisons
  show - Show one comparison by ID

Examples:
  loancmp history list --limit 5
  loancmp history show 01JAB3Q4V9N2X6W8Y0Z1C2D3E4`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent comparisons, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one comparison",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of comparisons to list")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		records, err := a.loans.History(historyLimit)
		if err != nil {
			return err
		}
		return report.WriteHistory(cmd.OutOrStdout(), records)
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		record, err := a.loans.HistoryRecord(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, record)
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
