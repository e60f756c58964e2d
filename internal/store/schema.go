package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS conversions (
    session_id     TEXT PRIMARY KEY,
    source_path    TEXT NOT NULL,
    report_path    TEXT NOT NULL,
    tool_calls     INTEGER NOT NULL,
    succeeded      INTEGER NOT NULL,
    failed         INTEGER NOT NULL,
    converted_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tool_calls (
    session_id     TEXT NOT NULL REFERENCES conversions(session_id) ON DELETE CASCADE,
    seq            INTEGER NOT NULL,
    tool_name      TEXT NOT NULL,
    start_time     TEXT,
    duration_ms    INTEGER NOT NULL DEFAULT 0,
    input_json     TEXT NOT NULL,
    output_json    TEXT,
    success        INTEGER NOT NULL DEFAULT 0,
    has_output     INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (session_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_conversions_at ON conversions(converted_at);
`
