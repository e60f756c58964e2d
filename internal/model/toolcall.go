// Package model defines the records shared between extraction, reporting,
// storage, and the TUI.
package model

// UnknownTool is the display name used when an event carried no tool name.
const UnknownTool = "Unknown"

// ToolCall pairs one tool invocation with its (optionally later) result.
// Records are append-only during extraction and immutable afterwards.
type ToolCall struct {
	ToolName   string
	StartTime  string
	Input      map[string]any
	DurationMs int64

	// Output and Success are attached when a ToolOutput event follows the
	// invocation. HasOutput distinguishes "no output event seen" from a
	// genuinely empty result.
	Output    any
	Success   bool
	HasOutput bool
}

// DisplayName returns the tool name, or UnknownTool when the event carried
// none.
func (c ToolCall) DisplayName() string {
	if c.ToolName == "" {
		return UnknownTool
	}
	return c.ToolName
}

// SessionReport is the unit the reporter and store operate on: one session's
// ordered tool calls plus the identifier derived from the source file name.
type SessionReport struct {
	SessionID string
	ToolCalls []ToolCall
}
