package cmd

import (
	"fmt"

	"flowtrace/internal/config"
	"flowtrace/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure logs directory and default session",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	logs := cfg.General.LogsDir
	defaultSession := cfg.General.DefaultSession

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session logs directory").
				Description("Where the tracing pipeline writes *.jsonl session files").
				Value(&logs),
			huh.NewInput().
				Title("Default session file").
				Description("Converted when no path is given on the command line").
				Value(&defaultSession),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.LogsDir = logs
	cfg.General.DefaultSession = defaultSession
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("\n  Config written to %s\n", config.ConfigPath())

	if files, err := source.ScanDir(logs); err == nil {
		fmt.Printf("  Found %d session files in %s\n", len(files), logs)
	}
	return nil
}
