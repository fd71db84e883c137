package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/spf13/cobra"
)

var holidayCmd = &cobra.Command{
	Use:   "holiday [date]",
	Short: "Toggle a holiday, or list holidays",
	Long:  "With a date, toggles it as a holiday (cancelling that day's periods when added). Without arguments, lists configured holidays.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHoliday,
}

var examCmd = &cobra.Command{
	Use:   "exam [date]",
	Short: "Toggle an exam day, or list exam days",
	Long:  "With a date, toggles it as an exam day (no attendance taken, labeled separately from holidays). Without arguments, lists exam days.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExam,
}

var semesterCmd = &cobra.Command{
	Use:   "semester [start] [end]",
	Short: "Show or set the semester date range",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runSemester,
}

func init() {
	rootCmd.AddCommand(holidayCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(semesterCmd)
}

func runHoliday(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 0 {
		listDates("Holidays", app.Snapshot.Settings.Holidays)
		return nil
	}

	date, weekday, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	if weekday == model.Sunday {
		return fmt.Errorf("Sundays are always holidays")
	}

	var added bool
	app.Snapshot.Settings.Holidays, added = toggleSpecialDay(app, app.Snapshot.Settings.Holidays, date, weekday)
	if err := app.save(); err != nil {
		return err
	}

	if added {
		fmt.Printf("  %s is now a holiday\n", cli.FormatDate(date))
	} else {
		fmt.Printf("  %s is no longer a holiday\n", cli.FormatDate(date))
	}
	return nil
}

func runExam(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 0 {
		listDates("Exam days", app.Snapshot.Settings.ExamDays)
		return nil
	}

	date, weekday, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	var added bool
	app.Snapshot.Settings.ExamDays, added = toggleSpecialDay(app, app.Snapshot.Settings.ExamDays, date, weekday)
	if err := app.save(); err != nil {
		return err
	}

	if added {
		fmt.Printf("  %s is now an exam day\n", cli.FormatDate(date))
	} else {
		fmt.Printf("  %s is no longer an exam day\n", cli.FormatDate(date))
	}
	return nil
}

func runSemester(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	set := &app.Snapshot.Settings
	if len(args) == 0 {
		if set.SemesterStart == "" && set.SemesterEnd == "" {
			fmt.Println("  Semester range not set.")
			return nil
		}
		fmt.Printf("  Semester: %s to %s\n",
			orUnset(set.SemesterStart), orUnset(set.SemesterEnd))
		return nil
	}

	for i, arg := range args {
		if _, err := time.Parse(model.DateFormat, arg); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
		}
		if i == 0 {
			set.SemesterStart = arg
		} else {
			set.SemesterEnd = arg
		}
	}
	if set.SemesterStart != "" && set.SemesterEnd != "" && set.SemesterEnd < set.SemesterStart {
		return fmt.Errorf("semester end %s is before start %s", set.SemesterEnd, set.SemesterStart)
	}

	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  Semester: %s to %s\n", orUnset(set.SemesterStart), orUnset(set.SemesterEnd))
	return nil
}

func listDates(title string, dates []string) {
	if len(dates) == 0 {
		fmt.Printf("  No %s configured.\n", title)
		return
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	fmt.Printf("  %s:\n", title)
	for _, d := range sorted {
		fmt.Printf("    %s\n", cli.FormatDate(d))
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
