package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/goalpace/internal/cli"

	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Payment history with running total",
	RunE:  runPayments,
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
}

func runPayments(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	ok, err := a.selectGoal(ctx, flagGoal)
	if err != nil || !ok {
		return err
	}

	d, err := a.sess.Dashboard(ctx)
	if err != nil {
		return err
	}

	if len(d.Payments) == 0 {
		fmt.Printf("\n  No payments logged for %q yet.\n", d.Summary.Goal.Title)
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.PaymentTable(d.Summary.Goal.Title, d.Payments)))
	return nil
}
