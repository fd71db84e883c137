package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"

	"github.com/spf13/cobra"
)

var overallCmd = &cobra.Command{
	Use:   "overall",
	Short: "All-time attendance statistics",
	RunE:  runOverall,
}

func init() {
	rootCmd.AddCommand(overallCmd)
}

func runOverall(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	stats := engine.OverallStats(app.Snapshot, app.policy(), app.Config.Attendance.OverallIncludeEmptyMonths)
	if len(stats.Months) == 0 {
		fmt.Println("\n  No attendance recorded yet.")
		fmt.Println("  Mark a class first: samattendx mark <date> <slot> present")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OVERALL ATTENDANCE"))
	fmt.Println()

	rows := make([][]string, 0, len(stats.Months)+5)
	for _, m := range stats.Months {
		ms := engine.MonthlyStats(m, app.Snapshot, app.policy())
		rows = append(rows, []string{
			cli.FormatMonth(m),
			cli.FormatRatio(ms.Present, ms.ScheduledPeriods),
			cli.RenderPercent(ms.Percentage),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Overall",
		cli.FormatRatio(stats.Present, stats.ScheduledPeriods),
		cli.RenderPercent(stats.Percentage),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Present", "Percentage"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
