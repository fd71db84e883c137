package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ThinkBotz/samattendx/internal/backup"
	"github.com/ThinkBotz/samattendx/internal/cli"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the active profile as JSON",
	Long:  "Writes the profile's subjects, timetable, attendance records, and settings as a JSON backup. Defaults to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the active profile's data from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := backup.Export(app.Snapshot, time.Now())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	infof("  Exported %s to %s\n", app.Profile.Name, args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	snap, err := backup.Import(data, app.Snapshot)
	if err != nil {
		return err
	}
	app.Snapshot = snap
	if err := app.save(); err != nil {
		return err
	}

	fmt.Printf("  Imported into %s: %s subjects, %s records\n",
		app.Profile.Name,
		cli.FormatNumber(int64(len(snap.Subjects))),
		cli.FormatNumber(int64(len(snap.AttendanceRecords))))
	return nil
}
