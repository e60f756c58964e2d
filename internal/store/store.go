// Package store keeps a SQLite history of converted sessions and their
// tool calls.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flowtrace/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store records completed conversions.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the XDG cache
// directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowtrace", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "flowtrace", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Conversion is one recorded session conversion.
type Conversion struct {
	SessionID   string
	SourcePath  string
	ReportPath  string
	ToolCalls   int
	Succeeded   int
	Failed      int
	ConvertedAt time.Time
}

// SaveConversion records a session report and its tool calls, replacing any
// previous record for the same session.
func (s *Store) SaveConversion(rep model.SessionReport, sourcePath, reportPath string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	sum := model.Summarize(rep.ToolCalls)
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT OR REPLACE INTO conversions
		(session_id, source_path, report_path, tool_calls, succeeded, failed, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.SessionID, sourcePath, reportPath, sum.TotalCalls, sum.Succeeded, sum.Failed, now,
	)
	if err != nil {
		return err
	}

	// Replace the call rows wholesale; seq preserves stream order.
	_, err = tx.Exec("DELETE FROM tool_calls WHERE session_id = ?", rep.SessionID)
	if err != nil {
		return err
	}

	for i, c := range rep.ToolCalls {
		inputJSON, err := json.Marshal(c.Input)
		if err != nil {
			return fmt.Errorf("encoding input for call %d: %w", i+1, err)
		}

		var outputJSON any
		if c.HasOutput {
			b, err := json.Marshal(c.Output)
			if err != nil {
				return fmt.Errorf("encoding output for call %d: %w", i+1, err)
			}
			outputJSON = string(b)
		}

		success := 0
		if c.Success {
			success = 1
		}
		hasOutput := 0
		if c.HasOutput {
			hasOutput = 1
		}

		_, err = tx.Exec(`INSERT INTO tool_calls
			(session_id, seq, tool_name, start_time, duration_ms, input_json, output_json, success, has_output)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rep.SessionID, i, c.ToolName, c.StartTime, c.DurationMs, string(inputJSON), outputJSON, success, hasOutput,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListConversions returns recorded conversions, most recent first.
func (s *Store) ListConversions() ([]Conversion, error) {
	rows, err := s.db.Query(`SELECT session_id, source_path, report_path,
		tool_calls, succeeded, failed, converted_at
		FROM conversions ORDER BY converted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		var at string
		if err := rows.Scan(&c.SessionID, &c.SourcePath, &c.ReportPath,
			&c.ToolCalls, &c.Succeeded, &c.Failed, &at); err != nil {
			return nil, err
		}
		c.ConvertedAt, _ = time.Parse(time.RFC3339, at)
		out = append(out, c)
	}
	return out, rows.Err()
}

// ToolCalls returns the recorded calls for a session in stream order.
func (s *Store) ToolCalls(sessionID string) ([]model.ToolCall, error) {
	rows, err := s.db.Query(`SELECT tool_name, start_time, duration_ms,
		input_json, output_json, success, has_output
		FROM tool_calls WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var calls []model.ToolCall
	for rows.Next() {
		var (
			c          model.ToolCall
			startTime  sql.NullString
			inputJSON  string
			outputJSON sql.NullString
			success    int
			hasOutput  int
		)
		if err := rows.Scan(&c.ToolName, &startTime, &c.DurationMs,
			&inputJSON, &outputJSON, &success, &hasOutput); err != nil {
			return nil, err
		}
		c.StartTime = startTime.String

		if err := json.Unmarshal([]byte(inputJSON), &c.Input); err != nil {
			return nil, fmt.Errorf("decoding input for %s: %w", c.ToolName, err)
		}
		if c.Input == nil {
			c.Input = map[string]any{}
		}

		c.Success = success == 1
		c.HasOutput = hasOutput == 1
		if c.HasOutput && outputJSON.Valid {
			if err := json.Unmarshal([]byte(outputJSON.String), &c.Output); err != nil {
				return nil, fmt.Errorf("decoding output for %s: %w", c.ToolName, err)
			}
		}

		calls = append(calls, c)
	}
	return calls, rows.Err()
}
