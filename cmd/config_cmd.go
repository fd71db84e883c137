package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Attendance]")
	fmt.Printf("    Target:        %.2f%%\n", cfg.Attendance.TargetPercent)
	fmt.Printf("    Denominator:   %s\n", cfg.Attendance.Denominator)
	fmt.Printf("    Count months with no records in overall: %v\n", cfg.Attendance.OverallIncludeEmptyMonths)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	} else {
		fmt.Printf("    Data directory: %s (default)\n", config.DataDir(cfg))
	}
	fmt.Println()

	fmt.Println("  Run `samattendx setup` to reconfigure.")
	return nil
}
