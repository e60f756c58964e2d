// Package report renders extracted tool calls to the console and to a
// simplified YAML session document.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"flowtrace/internal/model"
)

// doc mirrors the on-disk layout. Field order here is the field order in
// the file.
type doc struct {
	SessionID string    `yaml:"session_id"`
	ToolCalls []docCall `yaml:"tool_calls"`
}

// docCall deliberately omits output and success: the document is a display
// summary, not a faithful re-serialization of the log.
type docCall struct {
	ToolName   string         `yaml:"tool_name"`
	StartTime  string         `yaml:"start_time"`
	Input      map[string]any `yaml:"input"`
	DurationMs int64          `yaml:"duration_ms"`
}

// PrintSummary writes the call count and one indexed line per call.
func PrintSummary(w io.Writer, calls []model.ToolCall) {
	fmt.Fprintf(w, "Found %d tool calls:\n", len(calls))
	for i, c := range calls {
		fmt.Fprintf(w, "  %d. %s: %v\n", i+1, c.DisplayName(), c.Input)
	}
}

// WriteFile renders the session report as YAML at path, creating or
// overwriting the file.
func WriteFile(rep model.SessionReport, path string) error {
	d := doc{
		SessionID: rep.SessionID,
		ToolCalls: make([]docCall, 0, len(rep.ToolCalls)),
	}
	for _, c := range rep.ToolCalls {
		input := c.Input
		if input == nil {
			input = map[string]any{}
		}
		d.ToolCalls = append(d.ToolCalls, docCall{
			ToolName:   c.DisplayName(),
			StartTime:  c.StartTime,
			Input:      input,
			DurationMs: c.DurationMs,
		})
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// DerivePath computes the report destination from the source path by
// swapping the .jsonl suffix for .yml. No other transformation happens, so
// the report lands next to its source.
func DerivePath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, ".jsonl") + ".yml"
}
