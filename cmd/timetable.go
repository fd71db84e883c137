package cmd

import (
	"fmt"
	"strconv"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/spf13/cobra"
)

var timetableCmd = &cobra.Command{
	Use:     "timetable",
	Aliases: []string{"tt"},
	Short:   "Show or edit the weekly timetable",
	RunE:    runTimetableShow,
}

var timetableAssignCmd = &cobra.Command{
	Use:   "assign <day> <period> <subject>",
	Short: "Assign a subject to a period",
	Long:  "Assigns a subject (by name or id) to the numbered period of a weekday, e.g. 'timetable assign monday 3 Physics'.",
	Args:  cobra.ExactArgs(3),
	RunE:  runTimetableAssign,
}

var timetableFreeCmd = &cobra.Command{
	Use:   "free <day> <period>",
	Short: "Mark a period as free",
	Args:  cobra.ExactArgs(2),
	RunE:  runTimetableFree,
}

func init() {
	timetableCmd.AddCommand(timetableAssignCmd)
	timetableCmd.AddCommand(timetableFreeCmd)
	rootCmd.AddCommand(timetableCmd)
}

func runTimetableShow(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Println(cli.RenderTitle("Weekly Timetable"))
	for _, ds := range app.Snapshot.Timetable.Schedule {
		t := cli.Table{Headers: []string{ds.Day.String(), "", ""}}
		for i, slot := range ds.TimeSlots {
			name := "(free)"
			if slot.SubjectID != "" {
				name = app.Snapshot.SubjectName(slot.SubjectID)
			}
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%s-%s", slot.StartTime, slot.EndTime),
				name,
			})
		}
		fmt.Println(cli.RenderTable(t))
	}
	return nil
}

func runTimetableAssign(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	slot, err := resolveSlot(&app.Snapshot, args[0], args[1])
	if err != nil {
		return err
	}
	subject, ok := findSubject(app.Snapshot.Subjects, args[2])
	if !ok {
		return fmt.Errorf("no subject %q (add it with 'subjects add')", args[2])
	}

	slot.SubjectID = subject.ID
	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  %s period %s is now %s\n", args[0], args[1], subject.Name)
	return nil
}

func runTimetableFree(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	slot, err := resolveSlot(&app.Snapshot, args[0], args[1])
	if err != nil {
		return err
	}
	slot.SubjectID = ""
	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  %s period %s is now free\n", args[0], args[1])
	return nil
}

// resolveSlot returns a pointer into the snapshot's timetable for the
// named weekday and 1-based period number.
func resolveSlot(snap *model.Snapshot, dayArg, periodArg string) (*model.TimeSlot, error) {
	day, err := model.ParseWeekday(dayArg)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(periodArg)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid period %q (want a number from 1)", periodArg)
	}
	for i := range snap.Timetable.Schedule {
		ds := &snap.Timetable.Schedule[i]
		if ds.Day != day {
			continue
		}
		if n > len(ds.TimeSlots) {
			return nil, fmt.Errorf("%s only has %d periods", day, len(ds.TimeSlots))
		}
		return &ds.TimeSlots[n-1], nil
	}
	return nil, fmt.Errorf("no timetable for %s", day)
}

// findSubject matches by id first, then by case-sensitive name.
func findSubject(subjects []model.Subject, key string) (model.Subject, bool) {
	for _, s := range subjects {
		if s.ID == key {
			return s, true
		}
	}
	for _, s := range subjects {
		if s.Name == key {
			return s, true
		}
	}
	return model.Subject{}, false
}
