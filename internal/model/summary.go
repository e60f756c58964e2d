package model

// Summary holds per-session tool call statistics.
type Summary struct {
	TotalCalls    int
	Succeeded     int
	Failed        int
	AvgDurationMs float64
	SuccessRate   float64 // 0-100, over calls that have an output
}

// Summarize computes per-session statistics over extracted tool calls.
// Calls without an attached output count as neither succeeded nor failed.
func Summarize(calls []ToolCall) Summary {
	s := Summary{TotalCalls: len(calls)}
	if len(calls) == 0 {
		return s
	}

	var totalMs int64
	completed := 0
	for _, c := range calls {
		totalMs += c.DurationMs
		if !c.HasOutput {
			continue
		}
		completed++
		if c.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}

	s.AvgDurationMs = float64(totalMs) / float64(len(calls))
	if completed > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(completed) * 100
	}
	return s
}
