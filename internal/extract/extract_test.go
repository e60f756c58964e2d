package extract

import (
	"reflect"
	"strings"
	"testing"
)

func run(t *testing.T, lines ...string) ([]modelCall, error) {
	t.Helper()
	calls, err := Extract(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	out := make([]modelCall, len(calls))
	for i, c := range calls {
		out[i] = modelCall{c.ToolName, c.StartTime, c.DurationMs, c.HasOutput, c.Success}
	}
	return out, err
}

// modelCall is a comparable projection of model.ToolCall for asserts.
type modelCall struct {
	Name      string
	Start     string
	Duration  int64
	HasOutput bool
	Success   bool
}

func TestExtract_PairsInputWithOutput(t *testing.T) {
	calls, err := Extract(strings.NewReader(strings.Join([]string{
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"search","tool_args":{"q":"cats"}},"timing":{"step_timeuse_ms":120}}`,
		`{"event_type":"ToolOutput","tool_output":{"results":"3 hits","success":true}}`,
		`{"event_type":"ToolInput","timestamp":"t2","tool_input":{"tool_name":"fetch","tool_args":{}}}`,
	}, "\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(calls))
	}

	first := calls[0]
	if first.ToolName != "search" || first.StartTime != "t1" || first.DurationMs != 120 {
		t.Errorf("first call = %q/%q/%d, want search/t1/120", first.ToolName, first.StartTime, first.DurationMs)
	}
	if !reflect.DeepEqual(first.Input, map[string]any{"q": "cats"}) {
		t.Errorf("first input = %v, want {q: cats}", first.Input)
	}
	if !first.HasOutput || first.Output != "3 hits" || !first.Success {
		t.Errorf("first output = %v/%v/%v, want 3 hits/true/true", first.Output, first.Success, first.HasOutput)
	}

	second := calls[1]
	if second.ToolName != "fetch" || second.StartTime != "t2" || second.DurationMs != 0 {
		t.Errorf("second call = %q/%q/%d, want fetch/t2/0", second.ToolName, second.StartTime, second.DurationMs)
	}
	if len(second.Input) != 0 || second.Input == nil {
		t.Errorf("second input = %v, want empty non-nil map", second.Input)
	}
	if second.HasOutput {
		t.Error("second call should have no output attached")
	}
}

func TestExtract_OutputBeforeAnyInputIsDropped(t *testing.T) {
	calls, err := run(t,
		`{"event_type":"ToolOutput","tool_output":{"results":"orphan","success":true}}`,
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"ls","tool_args":{}}}`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
	if calls[0].HasOutput {
		t.Error("orphan output must not attach to a later call")
	}
}

func TestExtract_OutputTargetsLastCall(t *testing.T) {
	calls, err := run(t,
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{}}}`,
		`{"event_type":"ToolInput","timestamp":"t2","tool_input":{"tool_name":"b","tool_args":{}}}`,
		`{"event_type":"ToolOutput","tool_output":{"results":"r","success":true}}`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls[0].HasOutput {
		t.Error("output attached to first call, want last")
	}
	if !calls[1].HasOutput || !calls[1].Success {
		t.Error("output missing on last call")
	}
}

func TestExtract_SecondOutputOverwritesLast(t *testing.T) {
	raw, err := Extract(strings.NewReader(strings.Join([]string{
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{}}}`,
		`{"event_type":"ToolOutput","tool_output":{"results":"first","success":true}}`,
		`{"event_type":"ToolOutput","tool_output":{"results":"second","success":false}}`,
	}, "\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("got %d calls, want 1", len(raw))
	}
	if raw[0].Output != "second" || raw[0].Success {
		t.Errorf("last output = %v/%v, want second/false (overwrite)", raw[0].Output, raw[0].Success)
	}
}

func TestExtract_SkipsUnknownAndEmptyInputEvents(t *testing.T) {
	calls, err := run(t,
		`{"event_type":"Prompt","timestamp":"t0"}`,
		`{"event_type":"ToolInput","timestamp":"t1"}`,
		`{"event_type":"ToolInput","timestamp":"t2","tool_input":{}}`,
		`{"event_type":"StepComplete","timestamp":"t3","timing":{"step_timeuse_ms":50}}`,
		`{"event_type":"ToolInput","timestamp":"t4","tool_input":{"tool_name":"real","tool_args":{}}}`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 || calls[0].Name != "real" {
		t.Fatalf("got %v, want exactly the one real call", calls)
	}
}

func TestExtract_OutputDefaults(t *testing.T) {
	calls, err := Extract(strings.NewReader(strings.Join([]string{
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{}}}`,
		`{"event_type":"ToolOutput"}`,
	}, "\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls[0].Output != "" || calls[0].Success {
		t.Errorf("defaults = %v/%v, want \"\"/false", calls[0].Output, calls[0].Success)
	}
	if !calls[0].HasOutput {
		t.Error("bare ToolOutput still completes the call")
	}
}

func TestExtract_MalformedLineIsFatal(t *testing.T) {
	_, err := run(t,
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{}}}`,
		`{not json`,
	)
	if err == nil {
		t.Fatal("want parse error, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the failing line", err)
	}
}

func TestExtract_SkipsBlankLines(t *testing.T) {
	calls, err := run(t,
		``,
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{}}}`,
		`   `,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
}

func TestExtract_Idempotent(t *testing.T) {
	lines := []string{
		`{"event_type":"ToolInput","timestamp":"t1","tool_input":{"tool_name":"a","tool_args":{"x":1}},"timing":{"step_timeuse_ms":10}}`,
		`{"event_type":"ToolOutput","tool_output":{"results":{"ok":true},"success":true}}`,
		`{"event_type":"ToolInput","timestamp":"t2","tool_input":{"tool_name":"b","tool_args":{}}}`,
	}

	first, err := Extract(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ:\n%v\n%v", first, second)
	}
}
