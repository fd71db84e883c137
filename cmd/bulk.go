package cmd

import (
	"fmt"
	"time"

	"github.com/ThinkBotz/samattendx/internal/ledger"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBulkFrom string
	flagBulkTo   string
)

var bulkCmd = &cobra.Command{
	Use:   "bulk <present|absent|cancelled|clear> [date...]",
	Short: "Mark or clear a set of days at once",
	Long: `Applies one status to every period of each given day. Dates can be
listed as arguments or generated with --from/--to. Sundays, holidays,
and days outside the semester range are skipped automatically.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBulk,
}

func init() {
	bulkCmd.Flags().StringVar(&flagBulkFrom, "from", "", "Start of date range (YYYY-MM-DD, inclusive)")
	bulkCmd.Flags().StringVar(&flagBulkTo, "to", "", "End of date range (YYYY-MM-DD, inclusive)")
	rootCmd.AddCommand(bulkCmd)
}

func runBulk(_ *cobra.Command, args []string) error {
	dates := args[1:]
	for _, d := range dates {
		if _, err := time.Parse(model.DateFormat, d); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", d)
		}
	}

	if (flagBulkFrom == "") != (flagBulkTo == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if flagBulkFrom != "" {
		expanded, err := expandRange(flagBulkFrom, flagBulkTo)
		if err != nil {
			return err
		}
		dates = append(dates, expanded...)
	}
	if len(dates) == 0 {
		return fmt.Errorf("no dates given (list them or use --from/--to)")
	}

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	before := len(app.Snapshot.AttendanceRecords)
	snap := &app.Snapshot
	if args[0] == "clear" {
		snap.AttendanceRecords = ledger.BulkClear(snap.AttendanceRecords, snap.Settings, dates)
	} else {
		status, err := parseStatusArg(args[0])
		if err != nil {
			return err
		}
		snap.AttendanceRecords = ledger.BulkMark(snap.AttendanceRecords, snap.Timetable, snap.Settings, dates, status)
	}
	if err := app.save(); err != nil {
		return err
	}

	delta := len(app.Snapshot.AttendanceRecords) - before
	if delta < 0 {
		fmt.Printf("  Removed %d records across %d dates\n", -delta, len(dates))
	} else {
		fmt.Printf("  Wrote %d new records across %d dates\n", delta, len(dates))
	}
	return nil
}

// expandRange lists every date from start through end inclusive. The
// ledger filters out ineligible days, so the range can safely cross
// Sundays and holidays.
func expandRange(start, end string) ([]string, error) {
	from, err := time.ParseInLocation(model.DateFormat, start, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", start)
	}
	to, err := time.ParseInLocation(model.DateFormat, end, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", end)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("--to %s is before --from %s", end, start)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(model.DateFormat))
	}
	return dates, nil
}
