package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/goalpace/internal/cli"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show pacing and progress for a goal",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
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
	s := d.Summary

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", s.Goal.Title, cli.FormatYears(s.Goal.Years))))
	fmt.Println(cli.RenderCaption(fmt.Sprintf("Target: %s (%s)", cli.FormatINR(s.Goal.Amount), d.Words)))
	fmt.Println(cli.RenderCaption(fmt.Sprintf("Rate: %s (%s)", cli.FormatRate(s.Rate), a.sess.Quote().Source)))
	fmt.Println()

	fmt.Print(cli.RenderMetrics("Full Target", d.Targets))
	fmt.Println()

	fmt.Print(cli.RenderMetrics("Progress", d.Progress))
	fmt.Println(cli.RenderProgressBar(s.Progress.Fraction(), 40, cli.FormatPercent(s.Progress.Percent)))
	fmt.Println()

	fmt.Print(cli.RenderMetrics("Remaining Pace", d.Remaining))
	fmt.Println(cli.RenderCaption(d.Caption))
	return nil
}
