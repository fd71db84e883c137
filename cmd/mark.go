package cmd

import (
	"fmt"
	"time"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/ledger"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <date> <slot-id> <present|absent|cancelled>",
	Short: "Mark attendance for one period",
	Args:  cobra.ExactArgs(3),
	RunE:  runMark,
}

var clearCmd = &cobra.Command{
	Use:   "clear <date> <slot-id>",
	Short: "Remove the attendance record for one period",
	Args:  cobra.ExactArgs(2),
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(clearCmd)
}

func runMark(_ *cobra.Command, args []string) error {
	date, weekday, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	status, err := parseStatusArg(args[2])
	if err != nil {
		return err
	}
	slotID := args[1]

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	sched, ok := app.Snapshot.Timetable.DayFor(weekday)
	if !ok {
		return fmt.Errorf("no timetable for %s", weekday)
	}
	var slot model.TimeSlot
	found := false
	for _, s := range sched.TimeSlots {
		if s.ID == slotID {
			slot = s
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no slot %q on %s", slotID, weekday)
	}
	if slot.SubjectID == "" {
		return fmt.Errorf("slot %s on %s is a free period", slotID, weekday)
	}

	d, _ := time.ParseInLocation(model.DateFormat, date, time.Local)
	if !engine.IsTeachingDay(d, app.Snapshot.Timetable, app.Snapshot.Settings) {
		infof("  Note: %s is not a teaching day; recording anyway\n", cli.FormatDate(date))
	}

	app.Snapshot.AttendanceRecords = ledger.Mark(app.Snapshot.AttendanceRecords, model.AttendanceRecord{
		Date:       date,
		Day:        weekday,
		TimeSlotID: slotID,
		SubjectID:  slot.SubjectID,
		Status:     status,
	})
	if err := app.save(); err != nil {
		return err
	}

	fmt.Printf("  %s  slot %s  %s  -> %s\n",
		cli.FormatDate(date), slotID, app.Snapshot.SubjectName(slot.SubjectID), cli.StatusLabel(status))
	return nil
}

func runClear(_ *cobra.Command, args []string) error {
	date, _, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Snapshot.AttendanceRecords = ledger.Clear(app.Snapshot.AttendanceRecords, date, args[1])
	if err := app.save(); err != nil {
		return err
	}

	fmt.Printf("  Cleared %s slot %s\n", cli.FormatDate(date), args[1])
	return nil
}
