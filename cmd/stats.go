package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Monthly attendance statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	month, err := selectedMonth()
	if err != nil {
		return err
	}

	stats := engine.MonthlyStats(month, app.Snapshot, app.policy())

	// When the current month has nothing marked yet, show the latest
	// month that does.
	if flagMonth == "" && stats.Present+stats.Absent == 0 {
		if latest := engine.LatestMonthWithRecords(app.Snapshot); latest != "" && latest != month {
			infof("  No records for %s, showing %s\n", cli.FormatMonth(month), cli.FormatMonth(latest))
			month = latest
			stats = engine.MonthlyStats(month, app.Snapshot, app.policy())
		}
	}

	workingDays, _, _ := engine.MonthPeriods(month, app.Snapshot.Timetable, app.Snapshot.Settings)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ATTENDANCE  %s", cli.FormatMonth(month))))
	fmt.Println()

	rows := [][]string{
		{"Teaching days", cli.FormatNumber(int64(workingDays))},
		{"Scheduled periods", cli.FormatNumber(int64(stats.ScheduledPeriods))},
		{"---"},
		{"Present", cli.FormatNumber(int64(stats.Present))},
		{"Absent", cli.FormatNumber(int64(stats.Absent))},
		{"Cancelled", cli.FormatNumber(int64(stats.Cancelled))},
		{"---"},
		{"Percentage", cli.RenderPercent(stats.Percentage)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  " + cli.RenderProgressBar(stats.Percentage, 40))
	fmt.Println()

	return nil
}
