package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagTitle    string
	flagAmount   float64
	flagCurrency string
	flagYears    float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Create and list goals",
}

var goalCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a goal",
	RunE:  runGoalCreate,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals in creation order",
	RunE:  runGoalList,
}

func init() {
	goalCreateCmd.Flags().StringVar(&flagTitle, "title", "", "Goal title")
	goalCreateCmd.Flags().Float64Var(&flagAmount, "amount", 0, "Target amount")
	goalCreateCmd.Flags().StringVar(&flagCurrency, "currency", "INR", "Currency of --amount (INR or USD)")
	goalCreateCmd.Flags().Float64Var(&flagYears, "years", 1, "Years to reach the goal (at least 0.1)")
	_ = goalCreateCmd.MarkFlagRequired("title")
	_ = goalCreateCmd.MarkFlagRequired("amount")

	goalCmd.AddCommand(goalCreateCmd, goalListCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	id, err := a.sess.CreateGoal(ctx, session.GoalInput{
		Title:    strings.TrimSpace(flagTitle),
		Amount:   flagAmount,
		Currency: strings.ToUpper(flagCurrency),
		Years:    flagYears,
	})
	if err != nil {
		return err
	}

	g, err := a.sess.Select(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Created goal #%d %q\n", g.ID, g.Title)
	fmt.Printf("  Target: %s (%s Rupees) over %s\n",
		cli.FormatINR(g.Amount), cli.AmountWords(g.Amount), cli.FormatYears(g.Years))
	if strings.EqualFold(flagCurrency, "USD") {
		note("  Converted from %s at %s\n", cli.FormatUSD(flagAmount), cli.FormatRate(a.sess.Rate()))
	}
	return nil
}

func runGoalList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	return printGoals(ctx, a)
}

func printGoals(ctx context.Context, a *app) error {
	refs, err := a.sess.Goals(ctx)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Println("\n  No goals yet.")
		fmt.Println("  Create one with `goalpace goal create --title Car --amount 120000 --years 2`.")
		return nil
	}

	rows := make([][]string, 0, len(refs))
	for _, r := range refs {
		g, err := a.ledger.GetGoal(ctx, r.ID)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d %s", g.ID, g.Title),
			cli.FormatINR(g.Amount),
			cli.FormatYears(g.Years),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Amount", "Duration"},
		Rows:    rows,
	}))
	return nil
}
