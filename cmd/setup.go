package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ThinkBotz/samattendx/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to samattendx!")
	fmt.Println()

	// 1. Target percentage
	fmt.Println("  1. Target attendance percentage")
	fmt.Printf("     Current: %.0f%%\n", cfg.Attendance.TargetPercent)
	fmt.Print("     > ")
	targetRaw, _ := reader.ReadString('\n')
	targetRaw = strings.TrimSpace(targetRaw)
	if targetRaw != "" {
		if pct, err := strconv.ParseFloat(targetRaw, 64); err == nil && pct > 0 && pct <= 100 {
			cfg.Attendance.TargetPercent = pct
		} else {
			fmt.Println("     Keeping current value.")
		}
	}
	fmt.Println()

	// 2. Percentage denominator
	fmt.Println("  2. What should percentages divide by?")
	fmt.Println("     (1) Scheduled periods, absences hurt from day one [default]")
	fmt.Println("     (2) Periods where attendance was taken")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.Attendance.Denominator = "taken"
	default:
		cfg.Attendance.Denominator = "scheduled"
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `samattendx setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
