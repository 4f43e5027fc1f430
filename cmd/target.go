package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/projector"
	"github.com/theirongolddev/goalpace/internal/session"

	"github.com/spf13/cobra"
)

var flagConvention string

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Project a custom target from one fixed cadence",
	Long: "Fix one cadence and derive the others with 7, 30 and 365 day ratios.\n" +
		"With --convention usd the value is dollars; with inr it is rupees and a time-to-goal estimate is shown.",
	RunE: runTarget,
}

func init() {
	for _, c := range model.Cadences {
		targetCmd.Flags().Float64(string(c), 0, fmt.Sprintf("Fix the %s amount", c))
	}
	targetCmd.MarkFlagsOneRequired("daily", "weekly", "monthly", "yearly")
	targetCmd.MarkFlagsMutuallyExclusive("daily", "weekly", "monthly", "yearly")
	targetCmd.Flags().StringVar(&flagConvention, "convention", "", "usd or inr (default from config)")
	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, _ []string) error {
	in := session.CustomTargetInput{}
	for _, c := range model.Cadences {
		if cmd.Flags().Changed(string(c)) {
			v, _ := cmd.Flags().GetFloat64(string(c))
			in = session.CustomTargetInput{Cadence: c, Value: v}
		}
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if flagConvention != "" {
		conv, err := projector.ParseConvention(flagConvention)
		if err != nil {
			return err
		}
		a.sess.SetConvention(conv)
	}

	ok, err := a.selectGoal(ctx, flagGoal)
	if err != nil || !ok {
		return err
	}

	_, metrics, err := a.sess.CustomTarget(ctx, in)
	if err != nil {
		return err
	}

	unit := "USD"
	if a.sess.Convention() == projector.ConventionINR {
		unit = "INR"
	}
	fmt.Println()
	fmt.Print(cli.RenderMetrics(fmt.Sprintf("Custom Targets  %s fixed in %s", in.Cadence, unit), metrics))
	fmt.Println(cli.RenderCaption("Rate: " + cli.FormatRate(a.sess.Rate())))
	return nil
}
