package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"

	"github.com/spf13/cobra"
)

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Show the month's skip budget",
	Long: `Computes how many periods, and how many whole days, you can skip this
month while still finishing at the target percentage. Absences already
recorded count against the budget.`,
	RunE: runSkip,
}

func init() {
	rootCmd.AddCommand(skipCmd)
}

func runSkip(_ *cobra.Command, _ []string) error {
	month, err := selectedMonth()
	if err != nil {
		return err
	}

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	b := engine.MonthSkipBudget(month, app.Snapshot, app.target())
	if b.TotalPeriods == 0 {
		fmt.Printf("  No periods scheduled in %s.\n", cli.FormatMonth(month))
		return nil
	}

	fmt.Println(cli.RenderTitle("Skip Budget " + cli.FormatMonth(month)))
	fmt.Println(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Target", cli.FormatPercent(b.Target)},
			{"Working days", fmt.Sprintf("%d", b.WorkingDays)},
			{"Total periods", fmt.Sprintf("%d", b.TotalPeriods)},
			{"Each period is worth", fmt.Sprintf("%.3f%%", b.PerPeriodValue)},
			{"---"},
			{"Must attend", fmt.Sprintf("%d periods", b.MinAttendPeriods)},
			{"Skippable", fmt.Sprintf("%d periods", b.CanSkipPeriods)},
			{"Already absent", fmt.Sprintf("%d periods", b.AlreadyAbsent)},
			{"Still skippable", fmt.Sprintf("%d periods", b.StillCanSkip)},
			{"Whole days off", fmt.Sprintf("%d", b.FullDaysCanSkip)},
		},
	}))

	if b.AlreadyAbsent > b.CanSkipPeriods {
		fmt.Printf("  You are %d periods over budget; perfect attendance from here may not reach %s.\n",
			b.AlreadyAbsent-b.CanSkipPeriods, cli.FormatPercent(b.Target))
	}
	return nil
}
