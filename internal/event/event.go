// Package event defines the wire types for enhanced-otel JSONL session logs.
// Only the fields the extractor consumes are modeled; everything else on a
// line is ignored.
package event

// Event discriminator values the extractor acts on. Any other value is
// skipped.
const (
	TypeToolInput  = "ToolInput"
	TypeToolOutput = "ToolOutput"
)

// Event is one decoded line of a session log.
type Event struct {
	EventType  string      `json:"event_type"`
	Timestamp  string      `json:"timestamp"`
	ToolInput  *ToolInput  `json:"tool_input,omitempty"`
	ToolOutput *ToolOutput `json:"tool_output,omitempty"`
	Timing     *Timing     `json:"timing,omitempty"`
}

// ToolInput carries the invocation payload of a ToolInput event. ToolArgs
// is tool-dependent and unconstrained, so it stays a generic mapping.
type ToolInput struct {
	ToolName string         `json:"tool_name"`
	ToolArgs map[string]any `json:"tool_args"`
}

// IsEmpty reports whether the tool_input mapping is absent or carries
// nothing. Such events are skipped rather than producing an empty call.
func (t *ToolInput) IsEmpty() bool {
	return t == nil || (t.ToolName == "" && len(t.ToolArgs) == 0)
}

// ToolOutput carries the completion payload of a ToolOutput event.
// Results is opaque to the extractor.
type ToolOutput struct {
	Results any  `json:"results"`
	Success bool `json:"success"`
}

// Timing holds the per-step timing block attached by the tracing pipeline.
type Timing struct {
	StepTimeuseMs float64 `json:"step_timeuse_ms"`
}
