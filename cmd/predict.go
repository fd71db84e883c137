package cmd

import (
	"fmt"
	"time"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Project end-of-month eligibility",
	Long: `Shows how many of the remaining periods this month you must attend to
finish at the target percentage, and how many you can still miss. A
second row shows the next whole percent above the target as a safety
margin.`,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	target := app.target()
	projections := engine.ProjectMonth(app.Snapshot, time.Now(), []float64{target, target + 1})

	first := projections[0]
	if first.ScheduledSoFar == 0 && first.Remaining == 0 {
		fmt.Println("  No periods scheduled this month.")
		return nil
	}

	fmt.Println(cli.RenderTitle("Attendance Predictor " + cli.FormatMonth(time.Now().Format("2006-01"))))

	current := 0.0
	if first.ScheduledSoFar > 0 {
		current = float64(first.Present) / float64(first.ScheduledSoFar) * 100
	}
	fmt.Printf("  So far: %s of %s periods (%s)\n",
		cli.FormatNumber(int64(first.Present)),
		cli.FormatNumber(int64(first.ScheduledSoFar)),
		cli.RenderPercent(current))
	fmt.Printf("  Remaining this month: %d periods\n\n", first.Remaining)

	t := cli.Table{
		Headers: []string{"Target", "Must attend", "Can miss", "Total needed"},
	}
	for _, p := range projections {
		t.Rows = append(t.Rows, []string{
			cli.FormatPercent(p.Target),
			fmt.Sprintf("%d of %d", p.NeedToAttend, p.Remaining),
			fmt.Sprintf("%d", p.CanMiss),
			fmt.Sprintf("%d of %d", p.RequiredPresent, p.TotalProjected),
		})
	}
	fmt.Println(cli.RenderTable(t))

	if first.NeedToAttend > first.Remaining {
		fmt.Printf("  The %s target is out of reach this month even with full attendance.\n",
			cli.FormatPercent(target))
	}
	return nil
}
