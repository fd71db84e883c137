package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/ledger"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day <date> <present|absent|cancelled|clear>",
	Short: "Mark or clear every period of one day",
	Args:  cobra.ExactArgs(2),
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(_ *cobra.Command, args []string) error {
	date, weekday, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if args[1] == "clear" {
		app.Snapshot.AttendanceRecords = ledger.ClearDay(app.Snapshot.AttendanceRecords, date)
		if err := app.save(); err != nil {
			return err
		}
		fmt.Printf("  Cleared all records for %s\n", cli.FormatDate(date))
		return nil
	}

	status, err := parseStatusArg(args[1])
	if err != nil {
		return err
	}

	if _, ok := app.Snapshot.Timetable.DayFor(weekday); !ok {
		return fmt.Errorf("no timetable for %s", weekday)
	}

	app.Snapshot.AttendanceRecords = ledger.MarkAllDay(
		app.Snapshot.AttendanceRecords, app.Snapshot.Timetable, date, weekday, status)
	if err := app.save(); err != nil {
		return err
	}

	n := len(ledger.ForDate(app.Snapshot.AttendanceRecords, date))
	fmt.Printf("  Marked %d periods %s on %s\n", n, status, cli.FormatDate(date))
	return nil
}

// toggleSpecialDay flips a date in one of the special-day lists. Adding
// the date also cancels the day's periods; removing it leaves existing
// records alone (reconciling the ledger is an explicit action).
func toggleSpecialDay(app *appContext, list []string, date string, weekday model.Weekday) (updated []string, added bool) {
	for i, d := range list {
		if d == date {
			return append(list[:i:i], list[i+1:]...), false
		}
	}
	app.Snapshot.AttendanceRecords = ledger.MarkAllDay(
		app.Snapshot.AttendanceRecords, app.Snapshot.Timetable, date, weekday, model.StatusCancelled)
	return append(list, date), true
}
