package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagSubjectColor    string
	flagSubjectCriteria float64
)

// subjectPalette cycles through the accent colors for new subjects.
var subjectPalette = []string{
	"#4385BE", "#879A39", "#D0A215", "#DA702C", "#D14D41", "#8B7EC8", "#3AA99F",
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects with per-subject attendance",
	RunE:  runSubjectsList,
}

var subjectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectsAdd,
}

var subjectsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a subject and free its timetable periods",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectsRm,
}

var subjectsCriteriaCmd = &cobra.Command{
	Use:   "criteria <name> <percent|off>",
	Short: "Set or clear a subject's own target percentage",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubjectsCriteria,
}

func init() {
	subjectsAddCmd.Flags().StringVar(&flagSubjectColor, "color", "", "Hex color (default: next palette color)")
	subjectsAddCmd.Flags().Float64Var(&flagSubjectCriteria, "criteria", 0, "Per-subject target percentage")
	subjectsCmd.AddCommand(subjectsAddCmd)
	subjectsCmd.AddCommand(subjectsRmCmd)
	subjectsCmd.AddCommand(subjectsCriteriaCmd)
	rootCmd.AddCommand(subjectsCmd)
}

func runSubjectsList(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(app.Snapshot.Subjects) == 0 {
		fmt.Println("  No subjects yet. Add one with 'subjects add <name>'.")
		return nil
	}

	stats := engine.SubjectStats(app.Snapshot)
	t := cli.Table{Headers: []string{"Subject", "Present", "Percentage", "Target"}}
	for _, s := range app.Snapshot.Subjects {
		st := stats[s.ID]
		target := "-"
		if s.Criteria != nil {
			target = cli.FormatPercent(*s.Criteria)
		}
		t.Rows = append(t.Rows, []string{
			s.Name,
			cli.FormatRatio(st.Present, st.Taken),
			cli.RenderPercent(st.Percentage),
			target,
		})
	}
	fmt.Println(cli.RenderTitle("Subjects"))
	fmt.Println(cli.RenderTable(t))
	return nil
}

func runSubjectsAdd(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	name := args[0]
	if _, exists := findSubject(app.Snapshot.Subjects, name); exists {
		return fmt.Errorf("subject %q already exists", name)
	}

	color := flagSubjectColor
	if color == "" {
		color = subjectPalette[len(app.Snapshot.Subjects)%len(subjectPalette)]
	}
	sub := newSubject(name, color, time.Now())
	if flagSubjectCriteria != 0 {
		if !validPercent(flagSubjectCriteria) {
			return fmt.Errorf("invalid --criteria %g (want 1-100)", flagSubjectCriteria)
		}
		c := flagSubjectCriteria
		sub.Criteria = &c
	}

	app.Snapshot.Subjects = append(app.Snapshot.Subjects, sub)
	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  Added %s\n", name)
	return nil
}

func runSubjectsRm(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	sub, ok := findSubject(app.Snapshot.Subjects, args[0])
	if !ok {
		return fmt.Errorf("no subject %q", args[0])
	}

	snap := &app.Snapshot
	kept := snap.Subjects[:0]
	for _, s := range snap.Subjects {
		if s.ID != sub.ID {
			kept = append(kept, s)
		}
	}
	snap.Subjects = kept

	// Freed periods stop counting toward scheduled totals; attendance
	// records keep the id and render as "Unknown Subject".
	for di := range snap.Timetable.Schedule {
		for si := range snap.Timetable.Schedule[di].TimeSlots {
			slot := &snap.Timetable.Schedule[di].TimeSlots[si]
			if slot.SubjectID == sub.ID {
				slot.SubjectID = ""
			}
		}
	}

	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", sub.Name)
	return nil
}

func runSubjectsCriteria(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	sub, ok := findSubject(app.Snapshot.Subjects, args[0])
	if !ok {
		return fmt.Errorf("no subject %q", args[0])
	}

	for i := range app.Snapshot.Subjects {
		if app.Snapshot.Subjects[i].ID != sub.ID {
			continue
		}
		if args[1] == "off" {
			app.Snapshot.Subjects[i].Criteria = nil
			break
		}
		pct, err := strconv.ParseFloat(args[1], 64)
		if err != nil || !validPercent(pct) {
			return fmt.Errorf("invalid percentage %q (want 1-100 or 'off')", args[1])
		}
		app.Snapshot.Subjects[i].Criteria = &pct
	}

	if err := app.save(); err != nil {
		return err
	}
	fmt.Printf("  Updated criteria for %s\n", sub.Name)
	return nil
}

func newSubject(name, color string, now time.Time) model.Subject {
	return model.Subject{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
	}
}
