package cmd

import (
	"fmt"
	"os"

	"flowtrace/internal/config"
	"flowtrace/internal/extract"
	"flowtrace/internal/model"
	"flowtrace/internal/report"
	"flowtrace/internal/source"
	"flowtrace/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagLogsDir string
	flagNoStore bool
)

var rootCmd = &cobra.Command{
	Use:   "flowtrace [session.jsonl]",
	Short: "Tool call reports from agent session logs",
	Long: "Extract tool calls from enhanced-otel JSONL session logs and write\n" +
		"a simplified YAML report next to the source file.",
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLogsDir, "logs-dir", "d", "", "Session logs directory (default from config)")
	rootCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Skip recording the conversion in the history database")
}

// logsDir resolves the logs directory: flag first, then config.
func logsDir(cfg config.Config) string {
	if flagLogsDir != "" {
		return flagLogsDir
	}
	return cfg.General.LogsDir
}

func runConvert(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sourcePath := cfg.General.DefaultSession
	if len(args) == 1 {
		sourcePath = args[0]
	}

	calls, err := extract.File(sourcePath)
	if err != nil {
		return err
	}

	rep := model.SessionReport{
		SessionID: source.SessionID(sourcePath),
		ToolCalls: calls,
	}

	report.PrintSummary(os.Stdout, calls)

	dest := report.DerivePath(sourcePath)
	if err := report.WriteFile(rep, dest); err != nil {
		return err
	}
	fmt.Printf("Simplified session written to %s\n", dest)

	if !flagNoStore {
		recordConversion(rep, sourcePath, dest)
	}
	return nil
}

// recordConversion saves the result to the history database. Failures only
// warn: the conversion itself already succeeded.
func recordConversion(rep model.SessionReport, sourcePath, dest string) {
	st, err := store.Open(store.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "  history unavailable: %v\n", err)
		return
	}
	defer func() { _ = st.Close() }()

	if err := st.SaveConversion(rep, sourcePath, dest); err != nil {
		fmt.Fprintf(os.Stderr, "  recording conversion: %v\n", err)
	}
}
