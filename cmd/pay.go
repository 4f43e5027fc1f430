package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagUSD  float64
	flagDate string
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Log a USD payment toward a goal",
	RunE:  runPay,
}

func init() {
	payCmd.Flags().Float64Var(&flagUSD, "usd", 0, "USD sent")
	payCmd.Flags().StringVar(&flagDate, "date", "", "Payment date, YYYY-MM-DD (default: today)")
	_ = payCmd.MarkFlagRequired("usd")
	rootCmd.AddCommand(payCmd)
}

func runPay(cmd *cobra.Command, _ []string) error {
	var date time.Time
	if flagDate != "" {
		d, err := time.ParseInLocation(model.DateLayout, flagDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
		}
		date = d
	}

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

	if _, err := a.sess.LogPayment(ctx, session.PaymentInput{USDSent: flagUSD, Date: date}); err != nil {
		return err
	}

	d, err := a.sess.Dashboard(ctx)
	if err != nil {
		return err
	}
	p := d.Summary.Progress

	fmt.Printf("\n  Payment logged: %s → %s at %s\n",
		cli.FormatUSD(flagUSD), cli.FormatINR(flagUSD*a.sess.Rate()), cli.FormatRate(a.sess.Rate()))
	fmt.Println(cli.RenderProgressBar(p.Fraction(), 40, cli.FormatPercent(p.Percent)))
	fmt.Printf("  Remaining: %s\n", cli.FormatINR(p.RemainingINR))
	return nil
}
