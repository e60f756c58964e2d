package cmd

import (
	"fmt"

	"flowtrace/internal/cli"
	"flowtrace/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Previously converted sessions",
	Long: "List conversions recorded in the history database, or show the\n" +
		"recorded tool calls for one session.",
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	st, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if len(args) == 1 {
		return showSessionHistory(st, args[0])
	}

	convs, err := st.ListConversions()
	if err != nil {
		return err
	}
	if len(convs) == 0 {
		fmt.Println("\n  No conversions recorded yet.")
		return nil
	}

	t := cli.Table{
		Title:   "Conversion history",
		Headers: []string{"SESSION", "CALLS", "OK", "FAILED", "CONVERTED", "REPORT"},
	}
	for _, c := range convs {
		t.Rows = append(t.Rows, []string{
			c.SessionID,
			fmt.Sprintf("%d", c.ToolCalls),
			cli.OKStyle.Render(fmt.Sprintf("%d", c.Succeeded)),
			cli.FailStyle.Render(fmt.Sprintf("%d", c.Failed)),
			cli.FormatTime(c.ConvertedAt),
			cli.MutedStyle.Render(cli.Truncate(c.ReportPath, 40)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	return nil
}

func showSessionHistory(st *store.Store, sessionID string) error {
	calls, err := st.ToolCalls(sessionID)
	if err != nil {
		return err
	}
	if len(calls) == 0 {
		fmt.Printf("\n  No recorded calls for session %s.\n", sessionID)
		return nil
	}

	t := cli.Table{
		Title:   fmt.Sprintf("Session %s", sessionID),
		Headers: []string{"#", "TOOL", "STARTED", "DURATION", "STATUS"},
	}
	for i, c := range calls {
		status := cli.MutedStyle.Render("pending")
		if c.HasOutput {
			if c.Success {
				status = cli.OKStyle.Render("ok")
			} else {
				status = cli.FailStyle.Render("failed")
			}
		}
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			c.DisplayName(),
			c.StartTime,
			cli.FormatMs(c.DurationMs),
			status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	return nil
}
