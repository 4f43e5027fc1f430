package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/rates"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the USD to INR rate this session would use",
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	q := a.sess.Quote()
	fmt.Printf("\n  %s  (%s)\n", cli.FormatRate(q.Rate), q.Source)
	if q.Source == rates.SourceFallback {
		fmt.Println(cli.RenderWarning("Live rate unavailable; using the fallback rate."))
		if q.Err != nil {
			note("  %v\n", q.Err)
		}
	}
	return nil
}
