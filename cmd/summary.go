package cmd

import (
	"fmt"

	"flowtrace/internal/cli"
	"flowtrace/internal/config"
	"flowtrace/internal/extract"
	"flowtrace/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [session.jsonl]",
	Short: "Tool call statistics for a session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runStats(_ *cobra.Command, args []string) error {
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
	sum := model.Summarize(calls)

	fmt.Println()
	fmt.Println(cli.RenderTitle("Session Summary"))
	fmt.Println()
	fmt.Printf("  Source          %s\n", sourcePath)
	fmt.Printf("  Tool calls      %s\n", cli.FormatNumber(int64(sum.TotalCalls)))
	fmt.Printf("  Succeeded       %s\n", cli.OKStyle.Render(cli.FormatNumber(int64(sum.Succeeded))))
	fmt.Printf("  Failed          %s\n", cli.FailStyle.Render(cli.FormatNumber(int64(sum.Failed))))
	fmt.Printf("  Avg duration    %s\n", cli.FormatMs(int64(sum.AvgDurationMs)))
	fmt.Printf("  Success rate    %.1f%%\n", sum.SuccessRate)

	if sum.TotalCalls > 0 {
		t := cli.Table{Headers: []string{"#", "TOOL", "DURATION", "STATUS"}}
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
				cli.FormatMs(c.DurationMs),
				status,
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(t))
	}
	return nil
}
