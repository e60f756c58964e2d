package cmd

import (
	"fmt"

	"flowtrace/internal/cli"
	"flowtrace/internal/config"
	"flowtrace/internal/source"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List discovered session log files",
	RunE:  runSessions,
}

var sessionsLimit int

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 20, "Number of sessions to show")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := logsDir(cfg)
	files, err := source.ScanDir(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("\n  No session files found in %s.\n", dir)
		return nil
	}

	shown := files
	if sessionsLimit > 0 && len(shown) > sessionsLimit {
		shown = shown[:sessionsLimit]
	}

	t := cli.Table{
		Title:   fmt.Sprintf("Sessions in %s", dir),
		Headers: []string{"SESSION", "SIZE", "MODIFIED", "FILE"},
	}
	for _, f := range shown {
		t.Rows = append(t.Rows, []string{
			f.SessionID,
			cli.FormatSize(f.SizeBytes),
			cli.FormatTime(f.ModTime),
			cli.MutedStyle.Render(cli.Truncate(f.Path, 50)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	if len(shown) < len(files) {
		fmt.Printf("  ... and %d more\n", len(files)-len(shown))
	}
	return nil
}
