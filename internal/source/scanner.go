// Package source discovers enhanced-otel JSONL session files on disk.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DiscoveredFile is one session log found under the logs directory.
type DiscoveredFile struct {
	Path      string
	SessionID string
	SizeBytes int64
	ModTime   time.Time
}

// ScanDir walks logsDir and returns every .jsonl session file, newest
// first. A missing directory yields no files rather than an error, so a
// fresh checkout behaves like an empty log store.
func ScanDir(logsDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(logsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() || filepath.Ext(path) != ".jsonl" {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}

		files = append(files, DiscoveredFile{
			Path:      path,
			SessionID: SessionID(path),
			SizeBytes: fi.Size(),
			ModTime:   fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// SessionID derives the session identifier from a session file path. The
// tracing pipeline names logs enhanced_otel_<id>.jsonl; any other name
// falls back to the base name without its extension.
func SessionID(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, "enhanced_otel_")
}
