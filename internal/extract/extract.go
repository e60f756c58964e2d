// Package extract turns an enhanced-otel event stream into ordered tool
// call records.
package extract

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"flowtrace/internal/event"
	"flowtrace/internal/model"
)

// Extract reads one JSON event per line and returns tool calls in the order
// their ToolInput events appeared. A ToolOutput event completes the most
// recent call; a ToolOutput before any ToolInput is dropped.
//
// Pairing is positional, not keyed: callers must guarantee that inputs and
// outputs alternate 1:1 with no interleaving across concurrent calls.
//
// A line that fails to decode aborts the whole extraction; there is no
// per-line recovery.
func Extract(r io.Reader) ([]model.ToolCall, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	var calls []model.ToolCall
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev event.Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNo, err)
		}

		switch ev.EventType {
		case event.TypeToolInput:
			if ev.ToolInput.IsEmpty() {
				continue
			}
			input := ev.ToolInput.ToolArgs
			if input == nil {
				input = map[string]any{}
			}
			var durationMs int64
			if ev.Timing != nil {
				durationMs = int64(ev.Timing.StepTimeuseMs)
			}
			calls = append(calls, model.ToolCall{
				ToolName:   ev.ToolInput.ToolName,
				StartTime:  ev.Timestamp,
				Input:      input,
				DurationMs: durationMs,
			})

		case event.TypeToolOutput:
			if len(calls) == 0 {
				continue
			}
			last := &calls[len(calls)-1]
			var results any = ""
			success := false
			if ev.ToolOutput != nil {
				if ev.ToolOutput.Results != nil {
					results = ev.ToolOutput.Results
				}
				success = ev.ToolOutput.Success
			}
			last.Output = results
			last.Success = success
			last.HasOutput = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return calls, nil
}

// File opens a session log and extracts its tool calls.
func File(path string) ([]model.ToolCall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Extract(f)
}
