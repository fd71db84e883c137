package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/store"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List profiles",
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile and switch to it",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSwitch,
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileRename,
}

var profileRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRm,
}

func init() {
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileSwitchCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileRmCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	profiles, err := app.Store.Profiles()
	if err != nil {
		return err
	}

	t := cli.Table{Headers: []string{"", "Name", "Created"}}
	for _, p := range profiles {
		marker := " "
		if p.ID == app.Profile.ID {
			marker = "*"
		}
		t.Rows = append(t.Rows, []string{marker, p.Name, p.CreatedAt.Format("02 Jan 2006")})
	}
	fmt.Println(cli.RenderTitle("Profiles"))
	fmt.Println(cli.RenderTable(t))
	return nil
}

func runProfileAdd(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if _, err := findProfile(app.Store, args[0]); err == nil {
		return fmt.Errorf("profile %q already exists", args[0])
	}

	p, err := app.Store.CreateProfile(args[0], "")
	if err != nil {
		return err
	}
	// A fresh profile starts with the default timetable and nothing else.
	if err := app.Store.SaveSnapshot(p.ID, model.Snapshot{Timetable: model.DefaultTimetable()}); err != nil {
		return err
	}
	fmt.Printf("  Created and switched to %s\n", p.Name)
	return nil
}

func runProfileSwitch(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := findProfile(app.Store, args[0])
	if err != nil {
		return err
	}
	if err := app.Store.SwitchProfile(p.ID); err != nil {
		return err
	}
	fmt.Printf("  Switched to %s\n", p.Name)
	return nil
}

func runProfileRename(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := findProfile(app.Store, args[0])
	if err != nil {
		return err
	}
	if err := app.Store.RenameProfile(p.ID, args[1]); err != nil {
		return err
	}
	fmt.Printf("  Renamed %s to %s\n", args[0], args[1])
	return nil
}

func runProfileRm(_ *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := findProfile(app.Store, args[0])
	if err != nil {
		return err
	}
	if err := app.Store.DeleteProfile(p.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted %s\n", p.Name)
	return nil
}

func findProfile(st *store.Store, name string) (model.Profile, error) {
	profiles, err := st.Profiles()
	if err != nil {
		return model.Profile{}, err
	}
	for _, p := range profiles {
		if p.Name == name || p.ID == name {
			return p, nil
		}
	}
	return model.Profile{}, fmt.Errorf("no profile %q", name)
}
