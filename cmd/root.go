// Package cmd implements the samattendx CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ThinkBotz/samattendx/internal/config"
	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagMonth   string
	flagTarget  float64
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "samattendx",
	Short: "Class attendance tracker",
	Long:  "Track your class attendance against a weekly timetable: percentages, targets, and how much you can still skip.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// The engine assumes targets are already in range; reject bad
		// values here, the same way setup and the TUI form do.
		if flagTarget != 0 && !validPercent(flagTarget) {
			return fmt.Errorf("invalid --target %g (want 1-100)", flagTarget)
		}
		return nil
	},
	RunE: runStats,
}

// validPercent reports whether p is a usable percentage (0, 100].
func validPercent(p float64) bool {
	return p > 0 && p <= 100
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to operate on (YYYY-MM, default: current)")
	rootCmd.PersistentFlags().Float64VarP(&flagTarget, "target", "t", 0, "Target percentage override (1-100)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// appContext bundles everything a command needs: the open store, the
// active profile, its snapshot, and the loaded config.
type appContext struct {
	Store    *store.Store
	Profile  model.Profile
	Snapshot model.Snapshot
	Config   config.Config
}

// loadApp is the shared loading path used by all commands.
func loadApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(filepath.Join(config.DataDir(cfg), "attend.db"))
	if err != nil {
		return nil, err
	}

	profile, err := st.ActiveProfile()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	snap, err := st.LoadSnapshot(profile.ID)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &appContext{Store: st, Profile: profile, Snapshot: snap, Config: cfg}, nil
}

// save writes the context's snapshot back to the active profile.
func (app *appContext) save() error {
	return app.Store.SaveSnapshot(app.Profile.ID, app.Snapshot)
}

// Close releases the store.
func (app *appContext) Close() {
	_ = app.Store.Close()
}

// target returns the effective target percentage: the --target flag when
// given, else the configured default.
func (app *appContext) target() float64 {
	if flagTarget > 0 {
		return flagTarget
	}
	return app.Config.Attendance.TargetPercent
}

// policy returns the configured denominator policy.
func (app *appContext) policy() engine.DenominatorPolicy {
	return engine.ParsePolicy(app.Config.Attendance.Denominator)
}

// selectedMonth resolves --month, defaulting to the current month.
func selectedMonth() (string, error) {
	if flagMonth == "" {
		return time.Now().Format(model.MonthFormat), nil
	}
	if _, err := time.Parse(model.MonthFormat, flagMonth); err != nil {
		return "", fmt.Errorf("invalid month %q (want YYYY-MM)", flagMonth)
	}
	return flagMonth, nil
}

// parseDateArg validates a YYYY-MM-DD argument and returns it with its
// weekday.
func parseDateArg(arg string) (string, model.Weekday, error) {
	d, err := time.ParseInLocation(model.DateFormat, arg, time.Local)
	if err != nil {
		return "", model.Sunday, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return arg, model.WeekdayOf(d), nil
}

// parseStatusArg maps a status argument, rejecting anything but the
// three recordable statuses.
func parseStatusArg(arg string) (model.Status, error) {
	s := model.Status(arg)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q (want present, absent, or cancelled)", arg)
	}
	return s, nil
}

func infof(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
